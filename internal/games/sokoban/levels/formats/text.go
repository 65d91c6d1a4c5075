package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// ParseText parses a plain-text pack in the common Sokoban collection
// layout. Levels are separated by blank lines or a "---" line. Lines
// starting with ';' are comments: the first comment in a level block
// names the level, and a block of comments before the first level names
// the pack. "Title:" lines are treated like comments.
func ParseText(data []byte) (Pack, error) {
	var (
		pack     Pack
		rows     []string
		comments []string
	)

	flush := func() {
		if len(rows) == 0 {
			if len(pack.Levels) == 0 && pack.Name == "" && len(comments) > 0 {
				pack.Name = comments[0]
			}
			comments = nil
			return
		}
		lvl := Level{Map: strings.Join(rows, "\n")}
		if len(comments) > 0 {
			lvl.Name = comments[0]
		}
		pack.Levels = append(pack.Levels, lvl)
		rows, comments = nil, nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case strings.TrimSpace(line) == "", line == "---":
			flush()
		case strings.HasPrefix(line, ";"):
			comments = append(comments, strings.TrimSpace(strings.TrimPrefix(line, ";")))
		case strings.HasPrefix(line, "Title:"):
			comments = append(comments, strings.TrimSpace(strings.TrimPrefix(line, "Title:")))
		default:
			rows = append(rows, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Pack{}, fmt.Errorf("scanning text pack: %w", err)
	}
	flush()

	if len(pack.Levels) == 0 {
		return Pack{}, ErrNoLevels
	}
	return pack, nil
}
