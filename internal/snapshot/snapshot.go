// Package snapshot compares values against JSON golden files under testdata/
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var (
	callsLock sync.Mutex
	calls     = make(map[string]int)
)

// ValidateSnapshot compares obj, encoded as indented JSON, with testdata/<test name>-<n>.json
// where n counts the calls made by the test. A missing file is written out and the check passes
func ValidateSnapshot(t *testing.T, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := nextFilename(t.Name())

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			t.Fatal(err)
		}

		if err := create(filename, objJSON); err != nil {
			t.Fatal(err)
		}

		return true
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func nextFilename(testName string) string {
	callsLock.Lock()
	defer callsLock.Unlock()

	name := strings.ReplaceAll(testName, "/", "_")
	call := calls[name]
	calls[name] = call + 1

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

func create(filename string, objJSON []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(objJSON, '\n'), 0644)
}
