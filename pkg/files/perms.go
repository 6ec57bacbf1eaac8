package files

import "os"

// NoPermissions is reported when an entry's metadata can not be read.
const NoPermissions = "---------"

// PermsLen is the only accepted length of a permission string.
const PermsLen = len(NoPermissions)

var permBits = [PermsLen]struct {
	letter byte
	bit    os.FileMode
}{
	{'r', 0o400}, {'w', 0o200}, {'x', 0o100},
	{'r', 0o040}, {'w', 0o020}, {'x', 0o010},
	{'r', 0o004}, {'w', 0o002}, {'x', 0o001},
}

// FormatPerms renders the permission bits of mode as "rwxr-xr--".
func FormatPerms(mode os.FileMode) string {
	b := []byte(NoPermissions)
	for i, p := range permBits {
		if mode&p.bit != 0 {
			b[i] = p.letter
		}
	}
	return string(b)
}

// ParsePerms decodes a permission string leniently: a position sets its bit
// only when it holds the expected letter, anything else leaves it unset.
// Strings of the wrong length decode to 0.
func ParsePerms(s string) os.FileMode {
	if len(s) != PermsLen {
		return 0
	}
	var mode os.FileMode
	for i, p := range permBits {
		if s[i] == p.letter {
			mode |= p.bit
		}
	}
	return mode
}
