package cgroups

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// The control files speak plain ASCII: decimal integers, 0/1 flags,
// and comma-separated id lists. FormatList and ParseList are exported
// because callers that accept list syntax from users, such as command
// lines and config files, speak the same dialect.

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// FormatList renders vs as a comma-terminated run of decimals: {0,1,3}
// becomes "0,1,3,". Every value carries a trailing comma; the kernel
// accepts the form and ParseList reads it back. An empty list has no
// encoding and fails with ErrPrecondition.
func FormatList(vs []int) (string, error) {
	if len(vs) == 0 {
		return "", errors.Wrap(ErrPrecondition, "empty list")
	}
	var b strings.Builder
	for _, v := range vs {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}
	return b.String(), nil
}

// ParseList parses the list syntax of the cpuset files: comma
// separated entries, each a single id or an inclusive "a-b" range,
// with an optional trailing comma and newline. The kernel reports
// "0,1,2,7" as "0-2,7"; both forms parse to the same ids. The empty
// string parses to an empty list.
func ParseList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(strings.TrimSuffix(s, ","), ",") {
		part = strings.TrimSpace(part)
		if lo, hi, ok := strings.Cut(part, "-"); ok && lo != "" {
			a, err := strconv.Atoi(lo)
			if err != nil {
				return nil, errors.Wrapf(err, "range %q", part)
			}
			b, err := strconv.Atoi(hi)
			if err != nil {
				return nil, errors.Wrapf(err, "range %q", part)
			}
			if b < a {
				return nil, errors.Errorf("range %q is reversed", part)
			}
			for v := a; v <= b; v++ {
				out = append(out, v)
			}
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "list entry %q", part)
		}
		out = append(out, v)
	}
	return out, nil
}

// leadingInt parses the integer prefix of s the way strtol does:
// optional whitespace, an optional sign, then decimal digits, ignoring
// whatever follows. ok is false when no characters form an integer.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	j := i
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	k := j
	for k < len(s) && s[k] >= '0' && s[k] <= '9' {
		k++
	}
	if k == j {
		return 0, false
	}
	v, err := strconv.Atoi(s[i:k])
	if err != nil {
		return 0, false
	}
	return v, true
}
