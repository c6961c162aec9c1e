package board

import "fmt"

var (
	// CrosswordGameBoard is the classic 15x15 board for a fun Crossword
	// Game, featuring lots of wingos and blonks.
	CrosswordGameBoard []string
)

func init() {
	CrosswordGameBoard = []string{
		`=  '   =   '  =`,
		` -   "   "   - `,
		`  -   ' '   -  `,
		`'  -   '   -  '`,
		`    -     -    `,
		` "   "   "   " `,
		`  '   ' '   '  `,
		`=  '   -   '  =`,
		`  '   ' '   '  `,
		` "   "   "   " `,
		`    -     -    `,
		`'  -   '   -  '`,
		`  -   ' '   -  `,
		` -   "   "   - `,
		`=  '   =   '  =`,
	}
}

// NamedLayout returns the layout strings for a layout name. Only the
// classic layout exists today.
func NamedLayout(name string) ([]string, error) {
	switch name {
	case "CrosswordGame", "":
		return CrosswordGameBoard, nil
	default:
		return nil, fmt.Errorf("unknown board layout %q", name)
	}
}
