package cmd

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/superchip8/emulator/chip8"
)

// saveState gob-encodes a Snapshot and writes it to path.
func saveState(path string, snap *chip8.Snapshot) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// loadState reads and gob-decodes a Snapshot previously written by saveState.
func loadState(path string) (*chip8.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	var snap chip8.Snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &snap, nil
}
