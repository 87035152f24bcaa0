// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func listPackages(t *testing.T, dir string) []pkg {
	t.Helper()
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list in %s: %v", dir, err)
	}
	var pkgs []pkg
	dec := json.NewDecoder(&out)
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs
}

func TestImportBoundaries(t *testing.T) {
	frontends := []string{
		"isru/internal/appcore", "isru/internal/cli", "isru/internal/clibase",
		"isru/internal/modelapp", "isru/internal/sweepapp", "isru/internal/scenarioapp",
		"isru/internal/rootcmd", "isru/cmd/",
	}
	bans := map[string][]string{
		"isru/pkg/api":          {"isru/internal/", "isru-core/"},
		"isru/internal/models":  append([]string{"isru/internal/output", "isru/internal/writers", "isru/internal/pretty"}, frontends...),
		"isru/internal/sweep":   append([]string{"isru/internal/models"}, frontends...),
		"isru/internal/output":  frontends,
		"isru/internal/pretty":  frontends,
		"isru/internal/writers": frontends,
		"isru/internal/config":  {"isru/internal/models", "isru/internal/output", "isru/internal/writers"},
	}

	var violations []string
	for _, p := range listPackages(t, "../..") {
		if !strings.HasPrefix(p.ImportPath, "isru/") {
			continue
		}
		for prefix, forbidden := range bans {
			if p.ImportPath != prefix && !strings.HasPrefix(p.ImportPath, prefix+"/") {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, p.ImportPath+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

// Calculators never reach for the application module or the process.
func TestCoreIsSelfContained(t *testing.T) {
	banned := []string{"isru/", "os", "flag", "go.uber.org/", "github.com/spf13/"}
	var violations []string
	for _, p := range listPackages(t, "../../core") {
		for _, dep := range p.Imports {
			for _, ban := range banned {
				if dep == ban || (strings.HasSuffix(ban, "/") && strings.HasPrefix(dep, ban)) {
					violations = append(violations, p.ImportPath+" → "+dep)
				}
			}
		}
	}
	if len(violations) > 0 {
		t.Fatalf("core import violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
