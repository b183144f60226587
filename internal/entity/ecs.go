// internal/entity/ecs.go
package entity

import (
	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/types"
)

// ECS — контейнер всех сущностей: карты компонентов, индексированные
// EntityID. Игрок один, поэтому его компонент хранится отдельно,
// как и синглтоны Wave и Status.
type ECS struct {
	NextID types.EntityID

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Renderables map[types.EntityID]*component.Renderable
	Bullets     map[types.EntityID]*component.Bullet
	Zombies     map[types.EntityID]*component.Zombie

	PlayerID types.EntityID
	Player   *component.Player

	Wave   *component.Wave
	Status *component.GameStatus
}

// NewECS создаёт пустой контейнер.
func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Bullets:     make(map[types.EntityID]*component.Bullet),
		Zombies:     make(map[types.EntityID]*component.Zombie),
		Status: &component.GameStatus{
			Running: true,
		},
	}
}

// NewEntity выделяет новый идентификатор.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех карт компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Renderables, id)
	delete(ecs.Bullets, id)
	delete(ecs.Zombies, id)
}

// AliveZombies возвращает число живых зомби. Помеченные мёртвыми,
// но ещё не вычищенные, не считаются.
func (ecs *ECS) AliveZombies() int {
	n := 0
	for _, z := range ecs.Zombies {
		if z.Alive {
			n++
		}
	}
	return n
}
