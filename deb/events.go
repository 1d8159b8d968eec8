package deb

import (
	"encoding/json"
	"fmt"
)

// Listener is a callback function that receives events during the build process.
type Listener func(fmt.Stringer)

func jsonString(v interface{}) string {
	b, _ := json.Marshal(map[string]interface{}{
		fmt.Sprintf("%T", v): v,
	})
	return string(b)
}

// EventEntryWritten is emitted after an entry has been appended to the archive.
type EventEntryWritten struct {
	Path string    `json:"path,omitempty"`
	Kind EntryKind `json:"kind"`
	Mode uint32    `json:"mode"`
	Size uint64    `json:"size"`
}

func (e EventEntryWritten) String() string { return jsonString(e) }

// EventCopyrightPersisted is emitted when the standalone copyright copy is on disk.
type EventCopyrightPersisted struct {
	Path string `json:"path,omitempty"`
	Size int    `json:"size"`
}

func (e EventCopyrightPersisted) String() string { return jsonString(e) }

// EventArchiveComplete is emitted once the archive trailer has been written.
type EventArchiveComplete struct {
	Entries int   `json:"entries"`
	Size    int64 `json:"size"`
}

func (e EventArchiveComplete) String() string { return jsonString(e) }
