package moderation

import (
	"bufio"
	"bytes"
	"ink-functions/errors"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Blocklist carries the loaded words plus the languages they came from, for logging.
type Blocklist struct {
	Words     []string
	Languages []string
}

// BlocklistLoader reads one word per line from .txt files, one file per language.
type BlocklistLoader struct {
	fsys fs.FS
}

func NewBlocklistLoader(fsys fs.FS) *BlocklistLoader {
	return &BlocklistLoader{fsys: fsys}
}

// LoadAll reads every .txt file directly under dir ("fr.txt" -> "fr").
// Blank lines and lines starting with '#' are skipped.
func (l *BlocklistLoader) LoadAll(dir string) (Blocklist, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return Blocklist{}, err
	}

	var languages []string
	unique := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(l.fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return Blocklist{}, err
		}

		// bufio handles \r\n endings
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			unique[line] = struct{}{}
		}
		if err := scanner.Err(); err != nil {
			return Blocklist{}, err
		}
	}

	if len(unique) == 0 {
		return Blocklist{}, errors.ErrEmptyBlocklist
	}

	words := lo.Keys(unique)
	sort.Strings(words)
	return Blocklist{Words: words, Languages: languages}, nil
}
