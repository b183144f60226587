// internal/component/game_status.go
package component

// GameStatus — терминальное состояние и счёт симуляции.
// Running становится false в кадр, когда HP игрока доходит до нуля;
// после этого игровые мутации прекращаются, тикает только GameOverFade.
type GameStatus struct {
	Running      bool
	Score        int
	SurviveTime  float64 // суммарное время выживания, секунды
	GameOverFade float64 // косметический таймер затемнения после смерти
}
