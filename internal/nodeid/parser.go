package nodeid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// segmentRegex matches `name` or `name[1]`.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(?:\[(\d+)\])?$`)

func isValidSegmentName(name string) bool {
	return name != "-"
}

// Parse reads the canonical string form of an address.
func Parse(rawID string) (*Address, error) {
	if rawID == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}

	addr := &Address{}
	for _, segmentStr := range strings.Split(rawID, ".") {
		if segmentStr == "" {
			return nil, fmt.Errorf("identifier %q contains an empty segment", rawID)
		}

		matches := segmentRegex.FindStringSubmatch(segmentStr)
		if matches == nil {
			return nil, fmt.Errorf("invalid path segment format: %q", segmentStr)
		}

		name := matches[1]
		if !isValidSegmentName(name) {
			return nil, fmt.Errorf("invalid segment name: %q", name)
		}

		segment := NewPathSegment(name)
		if matches[2] != "" {
			index, err := strconv.Atoi(matches[2])
			if err != nil {
				return nil, fmt.Errorf("index of segment %q: %w", segmentStr, err)
			}
			segment = NewPathSegmentWithIndex(name, index)
		}
		addr.Path = append(addr.Path, segment)
	}

	return addr, nil
}
