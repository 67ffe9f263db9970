// Package analytics implementa o motor de insights: agregação por período, comparação de KPIs,
// agrupamento para gráficos, extração de sinais e seleção dos insights.
// Todas as funções são puras e não guardam estado entre chamadas.
package analytics

const (
	// DefaultProbability é aplicada a repasses pendentes sem probabilidade informada
	DefaultProbability = 0.8

	// RecencyWeight é o peso fixo de recência aplicado a todas as pontuações
	RecencyWeight = 1.2

	// InsightLimit é a quantidade exata de insights retornada por GenerateInsights
	InsightLimit = 6
)

// Engine carrega os parâmetros de negócio configuráveis do motor
type Engine struct {
	defaultProbability float64
}

type Option func(engine *Engine)

// WithDefaultProbability substitui a probabilidade padrão. Valores fora de [0, 1] são ignorados.
func WithDefaultProbability(probability float64) Option {
	return func(engine *Engine) {
		if probability < 0 || probability > 1 {
			return
		}
		engine.defaultProbability = probability
	}
}

func NewEngine(options ...Option) *Engine {
	engine := &Engine{
		defaultProbability: DefaultProbability,
	}

	for _, option := range options {
		option(engine)
	}

	return engine
}

func (e *Engine) DefaultProbability() float64 {
	return e.defaultProbability
}
