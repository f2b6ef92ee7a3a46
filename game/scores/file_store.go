package scores

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultFile is the score file name, relative to the working directory
const DefaultFile = "highscores.properties"

// FileStore keeps the table as "name=score" lines, readable by a Java
// Properties loader. Names are keys, so two entries with the same name
// collapse into one on save: the last one written wins.
type FileStore struct {
	Path   string
	Logger *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if path == "" {
		path = DefaultFile
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{Path: path, Logger: logger}
}

// Load reads the score file. A missing file is an empty table.
func (fs *FileStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(fs.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}

	return fs.parse(data), nil
}

func (fs *FileStore) parse(data []byte) []Entry {
	var entries []Entry
	index := make(map[string]int)

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimLeft(sc.Text(), " \t\f")
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		for continues(line) && sc.Scan() {
			lineNo++
			line = line[:len(line)-1] + strings.TrimLeft(sc.Text(), " \t\f")
		}
		if continues(line) {
			line = line[:len(line)-1]
		}

		name, value := splitProperty(line)
		score, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || name == "" {
			fs.Logger.Warn("skipping score line", "path", fs.Path, "line", lineNo)
			continue
		}

		if i, ok := index[name]; ok {
			entries[i].Score = score
			continue
		}
		index[name] = len(entries)
		entries = append(entries, Entry{Name: name, Score: score})
	}
	return entries
}

// Save rewrites the score file with a comment header like Properties.store
func (fs *FileStore) Save(entries []Entry) error {
	var buf bytes.Buffer
	buf.WriteString("#High Score\n")
	buf.WriteString("#" + time.Now().Format(time.UnixDate) + "\n")

	order := make([]string, 0, len(entries))
	last := make(map[string]int, len(entries))
	for _, e := range entries {
		if _, seen := last[e.Name]; !seen {
			order = append(order, e.Name)
		}
		last[e.Name] = e.Score
	}
	for _, name := range order {
		buf.WriteString(escapeKey(name))
		buf.WriteByte('=')
		buf.WriteString(strconv.Itoa(last[name]))
		buf.WriteByte('\n')
	}

	if dir := filepath.Dir(fs.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("write scores: %w", err)
		}
	}
	if err := os.WriteFile(fs.Path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	return nil
}

// continues reports whether line ends in an unescaped backslash, which joins
// it with the next line
func continues(line string) bool {
	n := len(line) - len(strings.TrimRight(line, `\`))
	return n%2 == 1
}

// splitProperty splits a logical line at the first unescaped '=', ':' or
// whitespace and unescapes the key
func splitProperty(line string) (string, string) {
	var key strings.Builder
	rs := []rune(line)
	i := 0
	for ; i < len(rs); i++ {
		r := rs[i]
		if r == '\\' && i+1 < len(rs) {
			i++
			switch rs[i] {
			case 't':
				key.WriteRune('\t')
			case 'n':
				key.WriteRune('\n')
			case 'r':
				key.WriteRune('\r')
			case 'f':
				key.WriteRune('\f')
			case 'u':
				if i+4 < len(rs) {
					if v, err := strconv.ParseUint(string(rs[i+1:i+5]), 16, 32); err == nil {
						key.WriteRune(rune(v))
						i += 4
						continue
					}
				}
				key.WriteRune('u')
			default:
				key.WriteRune(rs[i])
			}
			continue
		}
		if r == '=' || r == ':' || r == ' ' || r == '\t' || r == '\f' {
			break
		}
		key.WriteRune(r)
	}

	rest := strings.TrimLeft(string(rs[i:]), " \t\f")
	if rest != "" && (rest[0] == '=' || rest[0] == ':') {
		rest = rest[1:]
	}
	return key.String(), rest
}

func escapeKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '\\', '=', ':', '#', '!', ' ':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
