package model

// SweepPoint is one coordinate of the design grid.
type SweepPoint struct {
	Absorptivity float64 `json:"absorptivity"`
	Emissivity   float64 `json:"emissivity"`
	RadiatorArea float64 `json:"radiator_area"`
	HeaterPower  float64 `json:"heater_power"`
}

// EvaluationResult is the raw output of one balance evaluation, temperatures in K.
type EvaluationResult struct {
	DayTemp   float64    `json:"day_temp"`
	NightTemp float64    `json:"night_temp"`
	Point     SweepPoint `json:"sweep_point"`
}

// SolutionRecord is a rounded, reportable design point.
// Field order is the export column order.
type SolutionRecord struct {
	DayTemp      float64 `json:"day_temp"`
	NightTemp    float64 `json:"night_temp"`
	HeaterPower  float64 `json:"heater_power"`
	RadiatorArea float64 `json:"radiator_area"`
	Emissivity   float64 `json:"emissivity"`
	Absorptivity float64 `json:"absorptivity"`
}

// ResultData is what a finished sweep pushes to the front end.
type ResultData struct {
	RunID         string           `json:"run_id"`
	Evaluations   int              `json:"evaluations"`
	Feasible      []SolutionRecord `json:"feasible"`
	Targets       []SolutionRecord `json:"targets"`
	RadiatorAreas []float64        `json:"radiator_areas"`
	HeaterPowers  []float64        `json:"heater_powers"`
}

// ProgressData reports sweep progress, counted in evaluated grid points.
type ProgressData struct {
	RunID string `json:"run_id"`
	Done  int    `json:"done"`
	Total int    `json:"total"`
}

// Msg is the message exchanged with the front end.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// message types
const (
	MsgEnv      = "env"
	MsgStart    = "start"
	MsgStop     = "stop"
	MsgEnvSet   = "envSet"
	MsgStarted  = "started"
	MsgProgress = "progress"
	MsgResult   = "result"
	MsgStopped  = "stopped"
	MsgError    = "error"
)
