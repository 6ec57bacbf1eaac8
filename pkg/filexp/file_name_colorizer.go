package filexp

import (
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
)

type fileKind string

const (
	kindOther      fileKind = ""
	kindCode       fileKind = "code"
	kindScript     fileKind = "script"
	kindData       fileKind = "data"
	kindText       fileKind = "text"
	kindImage      fileKind = "image"
	kindVideo      fileKind = "video"
	kindDocument   fileKind = "document"
	kindArchive    fileKind = "archive"
	kindExecutable fileKind = "executable"
	kindLog        fileKind = "log"
)

var fileKinds = map[string]fileKind{
	".go": kindCode, ".c": kindCode, ".h": kindCode, ".cpp": kindCode, ".hpp": kindCode,
	".cs": kindCode, ".java": kindCode, ".rs": kindCode, ".js": kindCode, ".ts": kindCode,
	".py": kindCode, ".rb": kindCode, ".php": kindCode, ".html": kindCode, ".css": kindCode,

	".sh": kindScript, ".bash": kindScript, ".zsh": kindScript, ".bat": kindScript, ".ps1": kindScript,

	".json": kindData, ".xml": kindData, ".yaml": kindData, ".yml": kindData, ".toml": kindData,
	".csv": kindData, ".sql": kindData,

	".txt": kindText, ".md": kindText, ".rst": kindText,

	".jpg": kindImage, ".jpeg": kindImage, ".png": kindImage, ".gif": kindImage, ".webp": kindImage,
	".svg": kindImage,

	".mov": kindVideo, ".mp4": kindVideo, ".webm": kindVideo, ".mkv": kindVideo,

	".pdf": kindDocument, ".doc": kindDocument, ".docx": kindDocument, ".xls": kindDocument,
	".xlsx": kindDocument,

	".zip": kindArchive, ".tar": kindArchive, ".gz": kindArchive, ".tgz": kindArchive, ".xz": kindArchive,
	".7z": kindArchive,

	".exe": kindExecutable, ".bin": kindExecutable, ".so": kindExecutable, ".dll": kindExecutable,

	".log": kindLog,
}

var kindColors = map[fileKind]tcell.Color{
	kindCode:       tcell.ColorAqua,
	kindScript:     tcell.ColorGreen,
	kindData:       tcell.ColorGold,
	kindText:       tcell.ColorWhite,
	kindImage:      tcell.ColorMediumPurple,
	kindVideo:      tcell.ColorLightSalmon,
	kindDocument:   tcell.ColorBlue,
	kindArchive:    tcell.ColorOrangeRed,
	kindExecutable: tcell.ColorRed,
	kindLog:        tcell.ColorRosyBrown,
}

func kindOf(name string) fileKind {
	return fileKinds[strings.ToLower(filepath.Ext(name))]
}

// GetColorByFileExt picks the name colour of a file in the entries table.
func GetColorByFileExt(name string) tcell.Color {
	if color, ok := kindColors[kindOf(name)]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}
