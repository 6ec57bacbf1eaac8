package filexp

import "fmt"

const (
	msgFileCreated      = "[OK] File created."
	msgFileCreateFailed = "[ERR] Failed to create file."
	msgDirCreated       = "[OK] Directory created."
	msgDirCreateFailed  = "[ERR] Failed to create directory."
	msgDeleted          = "[OK] File deleted."
	msgDeleteFailed     = "[ERR] Delete failed."
	msgCopied           = "[OK] File copied."
	msgCopyFailed       = "[ERR] Copy failed."
	msgMoved            = "[OK] File moved."
	msgMoveFailed       = "[ERR] Move failed."
	msgPermsInvalid     = "[ERR] Invalid format (use rwxrwxrwx)."
	msgPermsUpdated     = "[OK] Permissions updated."
	msgPermsFailed      = "[ERR] Failed to update perms."
	msgCannotOpenDir    = "[ERR] Cannot open directory."
)

func msgOpening(name string) string {
	return fmt.Sprintf("[INFO] Opening '%s' with default editor.", name)
}

func msgPerms(name, perms string) string {
	return fmt.Sprintf("%s : %s", name, perms)
}

func outcome(ok bool, success, failure string) string {
	if ok {
		return success
	}
	return failure
}
