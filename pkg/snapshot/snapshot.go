package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var funcCount = make(map[string]int)

// ValidateSnapshot compares obj against testdata/<test func>-<call>.snap.
// Strings and string slices are stored as plain text, anything else as indented JSON.
// If the snapshot file does not exist yet, it is written and the check passes.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	pc, _, _, _ := runtime.Caller(1 + depth)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	call := funcCount[funcName]
	funcCount[funcName] = call + 1

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.snap", funcName, call))
	actual := render(obj)

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			create(filename, actual)
			return
		}

		t.Fatalf("could not read snapshot %s: %v", filename, err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(actual, "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func render(obj interface{}) string {
	switch v := obj.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	}

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		panic(err)
	}

	return string(objJSON)
}

func create(filename, contents string) {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		panic(err)
	}

	if err := os.WriteFile(filename, []byte(contents+"\n"), 0644); err != nil { // nolint:gosec
		panic(err)
	}
}
