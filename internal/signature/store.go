package signature

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/absurdtty/ttymood/internal/errors"
)

// Save writes the document to path atomically: temp file in the same
// directory, write, sync, close, rename. On any failure the temp file
// is removed and an existing document at path is left untouched.
func Save(doc *Document, path string) error {
	data, err := doc.JSON()
	if err != nil {
		return errors.NewWriteFailed(path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.NewWriteFailed(path, err)
	}

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return errors.NewWriteFailed(path, err)
	}
	tempPath := path + "." + hex.EncodeToString(randBytes) + ".tmp"

	file, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return errors.NewWriteFailed(path, err)
	}

	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tempPath)
		}
	}()

	if _, err := file.Write(data); err != nil {
		return errors.NewWriteFailed(path, err)
	}
	if err := file.Sync(); err != nil {
		return errors.NewWriteFailed(path, err)
	}

	// Close before rename; required on Windows, harmless elsewhere.
	if err := file.Close(); err != nil {
		return errors.NewWriteFailed(path, err)
	}
	file = nil

	if err := os.Rename(tempPath, path); err != nil {
		return errors.NewWriteFailed(path, err)
	}
	success = true
	return nil
}

// Load reads a document from path. A missing file is NOT_FOUND; a file
// that is not valid JSON or whose schema major version differs from
// ours is SCHEMA_MISMATCH.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound(path)
		}
		return nil, errors.NewSourceUnreadable(path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewSchemaMismatch("unparseable", Schema)
	}

	if !compatibleSchema(doc.Schema) {
		return nil, errors.NewSchemaMismatch(doc.Schema, Schema)
	}
	return &doc, nil
}

// compatibleSchema accepts any schema sharing our prefix and major
// version. "absurdtty.mood.v1" and a future "absurdtty.mood.v1.2" are
// compatible; "absurdtty.mood.v2" is not.
func compatibleSchema(schema string) bool {
	const prefix = "absurdtty.mood.v"
	rest, ok := strings.CutPrefix(schema, prefix)
	if !ok {
		return false
	}
	major, _, _ := strings.Cut(rest, ".")
	want, _, _ := strings.Cut(strings.TrimPrefix(Schema, prefix), ".")
	return major != "" && major == want
}
