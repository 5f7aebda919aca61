package downloader

import (
	"os"
)

func newFileTransfer(d *Downloader, meta *FileMeta, file *os.File) *fileTransfer {
	return &fileTransfer{
		d:    d,
		meta: meta,
		file: file,
	}
}

// fileTransfer counts the bytes flowing into the destination file and fans
// progress out to the listener.
type fileTransfer struct {
	d       *Downloader
	meta    *FileMeta
	file    *os.File
	written int64
}

func (t *fileTransfer) Write(p []byte) (int, error) {
	bytesWritten, err := t.file.Write(p)
	t.written += int64(bytesWritten)
	t.d.addCompleted(int64(bytesWritten))
	t.d.listener.OnTransferUpdate(t.meta, int64(bytesWritten))
	return bytesWritten, err
}

// rollback takes the bytes of a failed attempt back out of the completed
// count so a retry does not report past the total.
func (t *fileTransfer) rollback() {
	t.d.addCompleted(-t.written)
	t.written = 0
}
