package cmapgen

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "generated_cmrmap.py")
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestProcessing(t *testing.T) {
	p := writeFixture(t, pySource)

	var buf bytes.Buffer
	table, err := Processing(&buf, &Config{SourcePath: p})
	if err != nil {
		t.Fatalf("Processing: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("len = %d, want 3", len(table))
	}

	out := buf.String()
	if !strings.HasPrefix(out, "// CMRMAP data - 3 RGB triplets\n") {
		t.Errorf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "    {0.500000000000000000f, 0.250000000000000000f, 0.750000000000000000f},\n") {
		t.Errorf("data line missing:\n%s", out)
	}
	if !strings.HasSuffix(out, "};\n") {
		t.Errorf("closer missing:\n%s", out)
	}
}

func TestProcessingMissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "generated_cmrmap.py")

	var buf bytes.Buffer
	_, err := Processing(&buf, &Config{SourcePath: p})
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("err = %v, want ErrSourceNotFound", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes to output on failure", buf.Len())
	}
}

func TestProcessingBadPayload(t *testing.T) {
	p := writeFixture(t, `DATA = """this is not json"""`)

	var buf bytes.Buffer
	_, err := Processing(&buf, &Config{SourcePath: p})
	if !errors.Is(err, ErrMalformedData) {
		t.Fatalf("err = %v, want ErrMalformedData", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes to output on failure", buf.Len())
	}
}

func TestProcessingIdempotent(t *testing.T) {
	p := writeFixture(t, pySource)
	c := &Config{SourcePath: p}

	var a, b bytes.Buffer
	if _, err := Processing(&a, c); err != nil {
		t.Fatal(err)
	}
	if _, err := Processing(&b, c); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two runs over an unchanged source differ")
	}
}

func TestProcessingCustomArrayName(t *testing.T) {
	p := writeFixture(t, pySource)

	var buf bytes.Buffer
	if _, err := Processing(&buf, &Config{SourcePath: p, ArrayName: "SPECTRO_LUT"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "static const float SPECTRO_LUT[256][3] = {") {
		t.Errorf("custom array name not emitted:\n%s", buf.String())
	}
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	table, err := Generate(&buf, &Config{Theme: ThemeGrayscale, Entries: 16})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(table) != 16 {
		t.Fatalf("len = %d, want 16", len(table))
	}
	out := buf.String()
	if !strings.Contains(out, "static const float GRAYSCALE_DATA[16][3] = {") {
		t.Errorf("declaration missing:\n%s", out)
	}
	if !strings.Contains(out, "// grayscale data - 16 RGB triplets") {
		t.Errorf("header missing:\n%s", out)
	}
}

func TestGenerateUnknownTheme(t *testing.T) {
	var buf bytes.Buffer
	_, err := Generate(&buf, &Config{Theme: Theme("sepia")})
	if err == nil {
		t.Fatal("Generate(sepia) did not fail")
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes to output on failure", buf.Len())
	}
}
