// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"math"

	"go-defense-sim/internal/component"
	"go-defense-sim/internal/config"
	"go-defense-sim/internal/defs"
	"go-defense-sim/internal/entity"
	"go-defense-sim/internal/event"
	"go-defense-sim/internal/system"
	"go-defense-sim/internal/types"
	"go-defense-sim/internal/utils"
	"go-defense-sim/pkg/route"
)

var (
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrUnknownTower     = errors.New("unknown tower type")
)

// FundsProvider — делегат проверки средств. Ядро симуляции не владеет
// валютой: кошелёк живёт снаружи и пополняется по событиям наград.
// nil-провайдер означает бесплатное размещение.
type FundsProvider interface {
	CanAfford(amount int) bool
	Spend(amount int) bool
}

type gridCell struct{ X, Y int }

// Game — фасад симуляции: владеет ECS, системами и диспетчером событий,
// принимает команды и отдаёт снапшоты. Обновляется внешним драйвером через
// Update(deltaTime); пауза — это просто отсутствие тиков.
type Game struct {
	Route            *route.Route
	Level            *defs.LevelConfig
	ECS              *entity.ECS
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	Lives            int

	funds    FundsProvider
	occupied map[gridCell]types.EntityID
}

// NewGame собирает симуляцию для уровня. seed=0 — случайный сид.
func NewGame(level *defs.LevelConfig, funds FundsProvider, seed int64) (*Game, error) {
	if level == nil {
		level = defs.DefaultLevel()
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}

	points := make([]route.Point, len(level.Waypoints))
	for i, wp := range level.Waypoints {
		points[i] = route.Point{X: wp.X, Y: wp.Y}
	}
	r, err := route.NewRoute(points)
	if err != nil {
		return nil, err
	}

	lives := level.Lives
	if lives == 0 {
		lives = config.BaseLives
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Route:           r,
		Level:           level,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(seed),
		Lives:           lives,
		funds:           funds,
		occupied:        make(map[gridCell]types.EntityID),
	}
	g.MovementSystem = system.NewMovementSystem(ecs, r, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, r, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, r, eventDispatcher, g.Rng, level.WaveDefinitions())

	listener := &gameEventListener{game: g}
	eventDispatcher.Subscribe(event.UnitReachedEnd, listener)

	return g, nil
}

// Update продвигает симуляцию на deltaTime секунд. Порядок фаз фиксирован:
// планировщик (спавн) → движение → башни → снаряды → удаление мёртвых.
// Враг, заспавненный в этом тике, уже виден прицеливанию и коллизиям.
func (g *Game) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.ECS.GameTime += deltaTime

	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.removeDeadUnits()
}

// removeDeadUnits выбрасывает из живого набора убитых и дошедших до конца
// врагов. События для них уже разосланы системами.
func (g *Game) removeDeadUnits() {
	for id, enemy := range g.ECS.Enemies {
		health := g.ECS.Healths[id]
		if enemy.ReachedEnd || (health != nil && health.Value <= 0) {
			delete(g.ECS.Positions, id)
			delete(g.ECS.Velocities, id)
			delete(g.ECS.Healths, id)
			delete(g.ECS.Enemies, id)
			delete(g.ECS.Renderables, id)
		}
	}
}

// PlaceTower размещает башню вида defID в ячейке сетки, содержащей (x, y).
// Состояние симуляции не меняется, если размещение отклонено.
func (g *Game) PlaceTower(defID string, x, y float64) (types.EntityID, error) {
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTower, defID)
	}

	if x < 0 || x >= config.ScreenWidth || y < 0 || y >= config.ScreenHeight {
		return 0, fmt.Errorf("%w: outside playfield", ErrInvalidPlacement)
	}

	cell := gridCell{X: int(math.Floor(x / config.CellSize)), Y: int(math.Floor(y / config.CellSize))}
	if _, taken := g.occupied[cell]; taken {
		return 0, fmt.Errorf("%w: cell occupied", ErrInvalidPlacement)
	}

	cx := (float64(cell.X) + 0.5) * config.CellSize
	cy := (float64(cell.Y) + 0.5) * config.CellSize
	if g.Route.DistanceTo(cx, cy) < config.RouteBuffer {
		return 0, fmt.Errorf("%w: too close to the route", ErrInvalidPlacement)
	}

	if g.funds != nil && !g.funds.Spend(def.Cost) {
		return 0, fmt.Errorf("%w: insufficient funds", ErrInvalidPlacement)
	}

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: cx, Y: cy}
	g.ECS.Towers[id] = &component.Tower{
		DefID:    defID,
		State:    component.TurretIdle,
		Damage:   def.Combat.Damage,
		Range:    def.Combat.Range,
		FireRate: def.Combat.FireRate,
		Policy:   def.Combat.DefaultPolicy,
		CellX:    cell.X,
		CellY:    cell.Y,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(def.Visuals.Radius),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	g.occupied[cell] = id
	return id, nil
}

// SetTargetingPolicy меняет политику выбора цели башни. Неопознанная
// политика игнорируется, прежняя сохраняется.
func (g *Game) SetTargetingPolicy(towerID types.EntityID, policy string) {
	tower, ok := g.ECS.Towers[towerID]
	if !ok {
		return
	}
	parsed, ok := defs.ParseTargetingPolicy(policy)
	if !ok {
		return
	}
	tower.Policy = parsed
}

// StartWave запускает следующую волну (ручной или автоматический запуск).
func (g *Game) StartWave(manual bool) error {
	return g.WaveSystem.StartWave(manual)
}

// gameEventListener обновляет состояние забега по событиям симуляции.
type gameEventListener struct {
	game *Game
}

func (l *gameEventListener) OnEvent(e event.Event) {
	if e.Type == event.UnitReachedEnd && l.game.Lives > 0 {
		l.game.Lives--
	}
}
