package protocol

import "photon-ca/internal/core"

type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	ClientName      string `json:"client_name,omitempty"`
}

type WelcomeMsg struct {
	Type            string                 `json:"type"`
	ProtocolVersion string                 `json:"protocol_version"`
	ClientID        string                 `json:"client_id"`
	Sim             string                 `json:"sim"`
	GridSize        int                    `json:"grid_size"`
	Spacing         float64                `json:"spacing"`
	CenterIndex     int                    `json:"center_index"`
	Params          core.ParameterSnapshot `json:"params"`
}

// InjectMsg targets exactly one of Index, Centered or Point. Variant selects
// "stationary" or "directional"; empty follows the engine mode.
type InjectMsg struct {
	Type            string      `json:"type"`
	ProtocolVersion string      `json:"protocol_version"`
	Variant         string      `json:"variant,omitempty"`
	Index           *int        `json:"index,omitempty"`
	Centered        *[3]int     `json:"centered,omitempty"`
	Point           *[3]float64 `json:"point,omitempty"`
}

type StepMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Count           int    `json:"count,omitempty"`
}

type ResetMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Seed            int64  `json:"seed,omitempty"`
}

type GetMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
}

type ExcitationMsg struct {
	Index     int    `json:"index"`
	Centered  [3]int `json:"centered"`
	Field     string `json:"field"`
	Direction [3]int `json:"direction"`
}

type HistoryMsg struct {
	Electric []int `json:"electric"`
	Magnetic []int `json:"magnetic"`
}

type StateMsg struct {
	Type            string          `json:"type"`
	ProtocolVersion string          `json:"protocol_version"`
	Tick            int             `json:"tick"`
	Electric        []int           `json:"electric"`
	Magnetic        []int           `json:"magnetic"`
	Excitations     []ExcitationMsg `json:"excitations"`
	History         HistoryMsg      `json:"history"`
	FirstElectric   *[3]int         `json:"first_electric"`
	FirstMagnetic   *[3]int         `json:"first_magnetic"`
}

type ErrorMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Code            string `json:"code"`
	Message         string `json:"message"`
}

func NewError(code, message string) ErrorMsg {
	return ErrorMsg{Type: TypeError, ProtocolVersion: Version, Code: code, Message: message}
}
