package persist

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mesh-intelligence/recipebook/internal/atomicfile"
	"github.com/mesh-intelligence/recipebook/pkg/types"
)

// maxLineSize bounds a single JSONL record; instructions can be long.
const maxLineSize = 1 << 20

// EncodeJSONL writes one recipe per line.
func EncodeJSONL(w io.Writer, recipes []types.Recipe) error {
	enc := json.NewEncoder(w)
	for _, r := range recipes {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding recipe %d: %w", r.ID, err)
		}
	}
	return nil
}

// WriteJSONL atomically writes recipes to path, one per line.
func WriteJSONL(path string, recipes []types.Recipe) error {
	return atomicfile.Write(path, 0o644, func(w *bufio.Writer) error {
		return EncodeJSONL(w, recipes)
	})
}

// DecodeJSONL reads recipes from r. Blank lines and lines that do not decode
// as a recipe are skipped.
func DecodeJSONL(r io.Reader) ([]types.Recipe, error) {
	var recipes []types.Recipe
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec types.Recipe
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		recipes = append(recipes, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning records: %w", err)
	}
	return recipes, nil
}

// ReadJSONL reads recipes from the JSONL file at path.
func ReadJSONL(path string) ([]types.Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	recipes, err := DecodeJSONL(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return recipes, nil
}
