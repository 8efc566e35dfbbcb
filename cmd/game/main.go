// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-defense-sim/internal/config"
	"go-defense-sim/internal/defs"
	"go-defense-sim/internal/state"
	"go-defense-sim/internal/storage"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	level := loadLevel()
	records := storage.OpenRecordStore("go-defense-sim")

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, level, records))
	} else {
		sm.SetState(state.NewMenuState(sm, level, records))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Defense Sim")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

// loadLevel пробует файл уровня рядом с бинарником, иначе встроенный.
func loadLevel() *defs.LevelConfig {
	const levelPath = "assets/level.yaml"
	if _, err := os.Stat(levelPath); err == nil {
		level, err := defs.LoadLevel(levelPath)
		if err != nil {
			log.Printf("failed to load %s, using built-in level: %v", levelPath, err)
			return defs.DefaultLevel()
		}
		return level
	}
	return defs.DefaultLevel()
}
