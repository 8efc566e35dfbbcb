// internal/state/game_state.go
package state

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-defense-sim/internal/app"
	"go-defense-sim/internal/assets"
	"go-defense-sim/internal/config"
	"go-defense-sim/internal/defs"
	"go-defense-sim/internal/event"
	"go-defense-sim/internal/storage"
	"go-defense-sim/internal/ui"
	"go-defense-sim/pkg/render"
	"go-defense-sim/pkg/route"
)

// порядок циклического переключения политик правым кликом
var policyCycle = []defs.TargetingPolicy{
	defs.PolicyNearestToGoal,
	defs.PolicyNearestToTower,
	defs.PolicyStrongest,
	defs.PolicyWeakest,
}

// GameState — состояние игры: владеет симуляцией, кошельком и UI,
// транслирует ввод в команды ядра и рисует снапшоты.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	wallet   *Wallet
	renderer *render.SceneRenderer
	records  *storage.RecordStore

	startButton   *ui.Button
	pauseButton   *ui.PauseButton
	waveIndicator *ui.WaveIndicator

	selectedTower string
	lastClickTime time.Time
	runRecorded   bool
	gameOver      bool
}

func NewGameState(sm *StateMachine, level *defs.LevelConfig, records *storage.RecordStore) *GameState {
	if level == nil {
		level = defs.DefaultLevel()
	}

	startingFunds := level.StartingFunds
	if startingFunds == 0 {
		startingFunds = config.StartingFunds
	}
	wallet := NewWallet(startingFunds)

	gameLogic, err := app.NewGame(level, wallet, 0)
	if err != nil {
		log.Fatalf("failed to create game: %v", err)
	}
	gameLogic.EventDispatcher.Subscribe(event.UnitKilled, wallet)
	gameLogic.EventDispatcher.Subscribe(event.WaveCompleted, wallet)

	waypoints := make([]route.Point, len(level.Waypoints))
	for i, wp := range level.Waypoints {
		waypoints[i] = route.Point{X: wp.X, Y: wp.Y}
	}

	face := assets.UIFont()
	gs := &GameState{
		sm:       sm,
		game:     gameLogic,
		wallet:   wallet,
		renderer: render.NewSceneRenderer(waypoints),
		records:  records,
		startButton: ui.NewButton(
			config.ScreenWidth-150, config.ScreenHeight-60, 130, 40,
			"START WAVE", face, config.UIColorBlue, config.UIColorRed,
		),
		pauseButton: ui.NewPauseButton(
			config.ScreenWidth-config.PauseButtonOffset, 30, 10,
			config.UIColorBlue, config.UIColorRed,
		),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 30, face),
		selectedTower: "TOWER_ARROW",
		lastClickTime: time.Now(),
	}
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Update(deltaTime float64) {
	g.handleKeyboard()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleLeftClick(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.handleRightClick(x, y)
	}

	// Пауза — это отсутствие тиков: команда Update просто не доставляется.
	if g.pauseButton.IsPaused || g.gameOver {
		return
	}
	g.game.Update(deltaTime)

	snap := g.game.Snapshot()
	if snap.Lives <= 0 {
		g.gameOver = true
	}
	if (g.gameOver || snap.Wave.Phase == "ALL_COMPLETE") && !g.runRecorded {
		g.runRecorded = true
		if g.records != nil {
			g.records.UpdateRun(snap.Wave.Completed, snap.Wave.FastestClear)
		}
	}
}

func (g *GameState) handleKeyboard() {
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.selectedTower = "TOWER_ARROW"
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.selectedTower = "TOWER_CANNON"
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		g.selectedTower = "TOWER_SNIPER"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.pauseButton.TogglePause()
	}
}

func (g *GameState) handleLeftClick(x, y int) {
	if time.Since(g.lastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return
	}
	g.lastClickTime = time.Now()

	if g.startButton.Contains(x, y) {
		g.startWave()
		return
	}
	if g.pauseButton.Contains(x, y) {
		g.pauseButton.TogglePause()
		return
	}

	if _, err := g.game.PlaceTower(g.selectedTower, float64(x), float64(y)); err != nil {
		log.Printf("placement rejected: %v", err)
	}
}

// handleRightClick циклически переключает политику прицеливания башни
// под курсором.
func (g *GameState) handleRightClick(x, y int) {
	snap := g.game.Snapshot()
	for _, tower := range snap.Towers {
		dx := tower.X - float64(x)
		dy := tower.Y - float64(y)
		if dx*dx+dy*dy > config.CellSize*config.CellSize/4 {
			continue
		}
		next := policyCycle[0]
		for i, p := range policyCycle {
			if string(p) == tower.Policy {
				next = policyCycle[(i+1)%len(policyCycle)]
				break
			}
		}
		g.game.SetTargetingPolicy(tower.ID, string(next))
		return
	}
}

func (g *GameState) startWave() {
	if err := g.game.StartWave(true); err != nil {
		log.Printf("start wave rejected: %v", err)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	snap := g.game.Snapshot()
	g.renderer.Draw(screen, snap)

	g.startButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.waveIndicator.Draw(screen, snap.Wave.Number, snap.Wave.TotalWaves)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Funds: %d", g.wallet.Funds()), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d", snap.Lives), 10, 26)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Tower: %s", g.selectedTower), 10, 42)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Shots: %d  Hits: %d  Kills: %d  Leaks: %d",
			snap.Stats.ShotsFired, snap.Stats.ShotsHit, snap.Stats.Kills, snap.Stats.Leaks),
		10, 58)

	switch {
	case g.gameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", config.ScreenWidth/2-30, config.ScreenHeight/2)
	case snap.Wave.Phase == "ALL_COMPLETE":
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("ALL WAVES CLEARED  avg %.1fs  fastest %.1fs  slowest %.1fs",
				snap.Wave.AverageClear, snap.Wave.FastestClear, snap.Wave.SlowestClear),
			config.ScreenWidth/2-150, config.ScreenHeight/2)
	case snap.Wave.Phase == "COUNTDOWN":
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("Next wave in %.0fs", snap.Wave.Countdown),
			config.ScreenWidth/2-50, 50)
	}
}
