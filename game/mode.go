package game

// Mode is the top-level game mode; exactly one is active at a time
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
	ModeViewScores
)

// Menu items, in display order
const (
	MenuStart = iota
	MenuScores
	menuItemCount
)

// MenuItems holds the labels of the main menu
var MenuItems = [menuItemCount]string{
	MenuStart:  "Start Game",
	MenuScores: "View High Scores",
}

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	case ModeViewScores:
		return "view-scores"
	default:
		return "unknown"
	}
}

// HandleEvent feeds one logical input event to the mode machine
func (g *Game) HandleEvent(e Event) {
	s := g.session

	if e.Kind == EventKeyDown && e.Action == ActionQuit {
		s.Quit = true
		return
	}

	// Releases always clear held flags so nothing sticks across modes
	if e.Kind == EventKeyUp {
		s.Input.set(e.Action, false)
		return
	}

	switch s.Mode {
	case ModeMenu:
		g.handleMenu(e)
	case ModeViewScores:
		if e.Kind == EventKeyDown && e.Action == ActionConfirm {
			g.setMode(ModeMenu)
		}
	case ModePlaying:
		g.handlePlaying(e)
	case ModeGameOver:
		if e.Kind == EventKeyDown && e.Action == ActionRestart {
			g.reset()
			s.SelectedMenu = MenuStart
			g.setMode(ModeMenu)
		}
	}
}

func (g *Game) handleMenu(e Event) {
	if e.Kind != EventKeyDown {
		return
	}
	s := g.session
	switch e.Action {
	case ActionMenuUp:
		s.SelectedMenu = (s.SelectedMenu + menuItemCount - 1) % menuItemCount
	case ActionMenuDown:
		s.SelectedMenu = (s.SelectedMenu + 1) % menuItemCount
	case ActionConfirm:
		switch s.SelectedMenu {
		case MenuStart:
			g.reset()
			g.setMode(ModePlaying)
		case MenuScores:
			g.refreshScores()
			g.setMode(ModeViewScores)
		}
	}
}

func (g *Game) handlePlaying(e Event) {
	in := &g.session.Input
	switch e.Kind {
	case EventKeyDown:
		in.set(e.Action, true)
	case EventPointer:
		in.Pointer = Vec2{X: e.X, Y: e.Y}
	case EventFire:
		in.Fire = true
		in.FireAim = Vec2{X: e.X, Y: e.Y}
	}
}

func (g *Game) setMode(m Mode) {
	if g.session.Mode == m {
		return
	}
	g.logger.Info("mode changed", "from", g.session.Mode, "to", m)
	g.session.Mode = m
}
