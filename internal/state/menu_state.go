// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-defense-sim/internal/assets"
	"go-defense-sim/internal/config"
	"go-defense-sim/internal/defs"
	"go-defense-sim/internal/storage"
	"go-defense-sim/internal/ui"
)

// MenuState — главное меню: заголовок, рекорды и кнопка старта.
type MenuState struct {
	sm          *StateMachine
	level       *defs.LevelConfig
	records     *storage.RecordStore
	startButton *ui.Button
}

func NewMenuState(sm *StateMachine, level *defs.LevelConfig, records *storage.RecordStore) *MenuState {
	return &MenuState{
		sm:      sm,
		level:   level,
		records: records,
		startButton: ui.NewButton(
			config.ScreenWidth/2-75, config.ScreenHeight/2, 150, 50,
			"PLAY", assets.UIFont(), config.UIColorBlue, config.UIColorRed,
		),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Exit() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if m.startButton.Contains(x, y) {
			m.sm.SetState(NewGameState(m.sm, m.level, m.records))
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.startButton.Draw(screen)
	ebitenutil.DebugPrintAt(screen, "DEFENSE SIM", config.ScreenWidth/2-40, config.ScreenHeight/2-80)

	if m.records != nil {
		rec := m.records.Records()
		if rec.TotalRuns > 0 {
			ebitenutil.DebugPrintAt(screen,
				fmt.Sprintf("Best wave: %d  Fastest clear: %.1fs  Runs: %d",
					rec.BestWave, rec.FastestClear, rec.TotalRuns),
				config.ScreenWidth/2-110, config.ScreenHeight/2+70)
		}
	}
}
