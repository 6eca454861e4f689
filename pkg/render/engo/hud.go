// pkg/render/engo/hud.go
package engo

import (
	"fmt"

	"github.com/opd-ai/go-breakout/pkg/entity"
)

// WindowTitle is the title shown before the first frame
const WindowTitle = "Breakout"

// hudTitle formats the HUD for the window title bar
func hudTitle(hud entity.HUD) string {
	title := fmt.Sprintf("%s | Score: %d  Lives: %d  Level: %d", WindowTitle, hud.Score, hud.Lives, hud.Level)
	if hud.Status != "" {
		title += " | " + hud.Status
	}
	return title
}

// titleBar only pushes a title when it changes
type titleBar struct {
	set  func(string)
	last string
}

func (t *titleBar) update(hud entity.HUD) {
	title := hudTitle(hud)
	if title == t.last {
		return
	}
	t.last = title
	if t.set != nil {
		t.set(title)
	}
}
