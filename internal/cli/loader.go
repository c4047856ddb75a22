package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/roach88/relcheck/internal/sqltype"
)

// Case is one compatibility case declared in a CUE file:
//
//	case: "orders-union": {
//	    op: "UNION"
//	    left: [{name: "id", type: "INT"}]
//	    right: [{name: "id", type: "BIGINT"}]
//	}
type Case struct {
	Name  string               `json:"name"`
	Op    string               `json:"op"`
	Left  []sqltype.ColumnSpec `json:"left"`
	Right []sqltype.ColumnSpec `json:"right"`
}

// LoadError represents an error that occurred during case loading.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadCases loads compatibility cases from the CUE files in a directory.
// Cases are returned sorted by name for deterministic output.
func LoadCases(dir string) ([]Case, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("cases directory not found: %s", dir)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing cases directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("error scanning directory: %v", err)}
	}
	if len(cueFiles) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}
	}

	return extractCases(value)
}

// extractCases decodes every entry under the top-level "case" field.
// CUE struct fields iterate in lexical field order, so the result is
// already sorted by name.
func extractCases(value cue.Value) ([]Case, error) {
	casesVal := value.LookupPath(cue.ParsePath("case"))
	if !casesVal.Exists() {
		return nil, &LoadError{Code: ErrCodeBadCase, Message: `no top-level "case" field found`}
	}

	iter, err := casesVal.Fields()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeBadCase, Message: fmt.Sprintf("iterating cases: %v", err)}
	}

	var cases []Case
	for iter.Next() {
		var c Case
		if err := iter.Value().Decode(&c); err != nil {
			return nil, &LoadError{Code: ErrCodeBadCase, Message: fmt.Sprintf("case %q: %v", iter.Selector(), err)}
		}
		c.Name = strings.Trim(iter.Selector().String(), `"`)
		if err := validateCase(c); err != nil {
			return nil, &LoadError{Code: ErrCodeBadCase, Message: fmt.Sprintf("case %q: %v", c.Name, err)}
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// validateCase checks the structural requirements of a decoded case.
func validateCase(c Case) error {
	if strings.TrimSpace(c.Op) == "" {
		return fmt.Errorf("op is required")
	}
	if len(c.Left) == 0 || len(c.Right) == 0 {
		return fmt.Errorf("both operands need at least one column")
	}
	return nil
}

// findCUEFiles returns the .cue files directly inside dir.
func findCUEFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".cue" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
