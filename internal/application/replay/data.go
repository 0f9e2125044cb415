package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	J  bool `json:"j,omitempty"`  // Jump
	JP bool `json:"jp,omitempty"` // JumpPressed
	JR bool `json:"jr,omitempty"` // JumpReleased
}

// Data contains everything needed to replay a run
type Data struct {
	Version   string       `json:"version"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
