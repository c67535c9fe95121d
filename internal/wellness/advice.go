package wellness

import "strings"

// Advisory copy shown to the user.
const (
	AdviceLowMood = "Parece que has estado sintiéndote decaído últimamente. Considera tomar pausas, " +
		"hablar con alguien de confianza o hacer una actividad que disfrutes."
	AdviceHighHeartRate = "Tu frecuencia cardíaca promedio ha sido elevada. Intenta reducir el estrés y descansar más."
	AdviceLowHeartRate  = "Tu frecuencia cardíaca es bastante baja. Asegúrate de alimentarte bien y mantenerte activo."
	AdviceWeightChange  = "Se ha detectado una variación importante en tu peso. " +
		"Intenta mantener una alimentación y rutina más estable."
	AdviceAllWell = "¡Todo parece estar bien! Sigue cuidándote y mantén tus buenos hábitos 💪"

	// Source labels every generated recommendation.
	Source = "Análisis de tus últimos 7 días"
)

// Thresholds of the advice rules.
const (
	LowMoodBelow        = 3.0
	HighHeartRateAbove  = 90.0
	LowHeartRateBelow   = 50.0
	WeightChangeAtLeast = 3.0
)

const separator = "\n\n"

// Advise returns the statements triggered by s in display order. When no
// rule fires the result is the single all-well statement.
func Advise(s Signals) []string {
	var out []string

	if s.AvgMood < LowMoodBelow {
		out = append(out, AdviceLowMood)
	}

	if s.AvgHeartRate > HighHeartRateAbove {
		out = append(out, AdviceHighHeartRate)
	} else if s.AvgHeartRate < LowHeartRateBelow && s.AvgHeartRate > 0 {
		out = append(out, AdviceLowHeartRate)
	}

	if s.WeightChange >= WeightChangeAtLeast {
		out = append(out, AdviceWeightChange)
	}

	if len(out) == 0 {
		out = append(out, AdviceAllWell)
	}
	return out
}

// Compose joins the statements for s with a blank line between them.
func Compose(s Signals) string {
	return strings.TrimSpace(strings.Join(Advise(s), separator))
}
