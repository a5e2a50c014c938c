package cmd

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	// 1. Create a temporary directory
	tempDir := t.TempDir()

	// 2. Create veedor-hello executable
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
}
`, EnvLegislatorsFile, EnvLegislatorsFile, EnvOfficialsFile, EnvOfficialsFile, EnvVerbose, EnvVerbose)

	helloCmdPath := filepath.Join(tempDir, "veedor-hello")

	// Write source to a temporary file
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write veedor-hello source: %v", err)
	}
	log.Printf("Written veedor-hello source to %s", srcFile)

	// Compile veedor-hello
	cmd := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile veedor-hello: %v", err)
	}
	log.Printf("Compiled veedor-hello to %s", helloCmdPath)

	// 3. Compile the main veedor binary
	veedorBinaryPath := filepath.Join(tempDir, "veedor")
	cmd = exec.Command("go", "build", "-o", veedorBinaryPath, "../veedor")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile veedor binary: %v", err)
	}
	log.Printf("Compiled veedor binary to %s", veedorBinaryPath)

	// Define random values for global flags
	expectedLegislators := filepath.Join(tempDir, "random_legisladores.json")
	expectedOfficials := filepath.Join(tempDir, "random_funcionarios.json")
	expectedVerbose := true

	// 5. Call veedor binary with extension and global flags
	args := []string{
		"--legisladores", expectedLegislators,
		"--funcionarios", expectedOfficials,
		"-v",
		"hello", // The extension subcommand
	}

	// Use the compiled veedor binary directly
	veedorCmd := exec.Command(veedorBinaryPath, args...)
	oldPath := os.Getenv("PATH")
	veedorCmd.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + oldPath}
	log.Printf("set Env=%s", veedorCmd.Env)

	var stdout, stderr bytes.Buffer
	veedorCmd.Stdout = &stdout
	veedorCmd.Stderr = &stderr

	if err := veedorCmd.Run(); err != nil {
		t.Fatalf("veedor command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	// 6. Verify output
	output := stdout.String()

	expectedEnvVars := []struct {
		Name  string
		Value string
	}{
		{EnvLegislatorsFile, expectedLegislators},
		{EnvOfficialsFile, expectedOfficials},
		{EnvVerbose, strconv.FormatBool(expectedVerbose)},
	}

	for _, ev := range expectedEnvVars {
		expectedLine := fmt.Sprintf("%s=%s", ev.Name, ev.Value)
		if !strings.Contains(output, expectedLine) {
			t.Errorf("Expected output to contain %q, but got:\n%s", expectedLine, output)
		}
	}

	if stderr.Len() > 0 {
		t.Logf("Stderr from veedor command: %s", stderr.String())
	}
}
