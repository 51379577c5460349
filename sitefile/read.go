package sitefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadText parses the algs4 text format: n, then row/col pairs.
// Complexity: O(len(input)).
func ReadText(r io.Reader) (*Scenario, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var (
		nums []int
		pos  int
	)
	for sc.Scan() {
		pos++
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("token %d %q: %w", pos, sc.Text(), ErrMalformed)
		}
		nums = append(nums, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sitefile: read: %w", err)
	}
	if len(nums) == 0 {
		return nil, ErrEmpty
	}
	rest := nums[1:]
	if len(rest)%2 != 0 {
		return nil, fmt.Errorf("row %d has no column: %w", rest[len(rest)-1], ErrMalformed)
	}

	s := &Scenario{Size: nums[0], Sites: make([]Site, 0, len(rest)/2)}
	for i := 0; i < len(rest); i += 2 {
		s.Sites = append(s.Sites, Site{Row: rest[i], Col: rest[i+1]})
	}

	return s, nil
}

// ReadYAML parses a YAML scenario document.
func ReadYAML(r io.Reader) (*Scenario, error) {
	var s Scenario
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		if errors.Is(err, ErrMalformed) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &s, nil
}

// Load reads a scenario file, choosing YAML for .yaml/.yml and text otherwise.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sitefile: %w", err)
	}
	defer f.Close()

	var s *Scenario
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s, err = ReadYAML(f)
	default:
		s, err = ReadText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
