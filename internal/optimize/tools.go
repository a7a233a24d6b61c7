package optimize

import (
	"bytes"
	"fmt"
	"os/exec"
)

// defaultTools maps an extension (without dot) to the external optimizer
// command run against the copied output file. Each is overridable through
// configuration; the file path is appended as the last argument.
var defaultTools = map[string][]string{
	"jpg":  {"jpegoptim", "--strip-all", "--quiet"},
	"jpeg": {"jpegoptim", "--strip-all", "--quiet"},
	"png":  {"optipng", "-quiet", "-o2"},
	"gif":  {"gifsicle", "--batch", "-O2"},
}

func toolInstalled(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// runTool executes the optimizer in place on path. The tool is an opaque
// collaborator: only its exit status and stderr matter here.
func runTool(argv []string, path string) error {
	args := append(append([]string{}, argv[1:]...), path)
	cmd := exec.Command(argv[0], args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %v: %s", argv[0], err, bytes.TrimSpace(stderr.Bytes()))
	}
	return nil
}
