package filexp

const helpTitle = "HELP - FILEXP COMMANDS"

const helpText = `Up / Down, k / j         Move the selection
PgUp / PgDn, Home / End  Move by a page, jump to the first or last entry
Enter                    Open a directory, or a file with its default application
Backspace / Left         Go to the parent directory

c    Create a file in the current directory
C    Create a directory
d    Delete the selected file or empty directory (there is no undo)
y    Copy the selected entry, e.g. backup_report.txt or ../backup/report.txt
m    Move or rename the selected entry, e.g. new.txt or ../docs/new.txt
s    Search names below the current directory, * and ? match as a glob
p    Show the permissions of the selected entry and set new ones, e.g. rwxr--r--
h    Show this help (also F1)
q    Quit`

const pressAnyKey = "Press any key to return..."
