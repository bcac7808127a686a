package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds buffers used to encode settings before they are written to disk.
var BufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}
