package downloader

import (
	"context"
	"io"
)

// Remote is the file hosting provider as seen by the downloader.
type Remote interface {
	Stat(ctx context.Context, fileId string) (*FileMeta, error)
	List(ctx context.Context, parentId string) ([]*FileMeta, error)
	Fetch(ctx context.Context, fileId string, w io.Writer) (int64, error)
}

type Listener interface {
	OnTransferStart(file *FileMeta)
	OnTransferUpdate(file *FileMeta, chunk int64)
	OnTransferStatus(file *FileMeta, status Status)
	OnTransferTemporaryError(file *FileMeta, err error)
	OnTransferComplete(file *FileMeta)
	OnTransferError(file *FileMeta, err error)
}

// NopListener discards every event.
type NopListener struct{}

func (NopListener) OnTransferStart(*FileMeta)                 {}
func (NopListener) OnTransferUpdate(*FileMeta, int64)         {}
func (NopListener) OnTransferStatus(*FileMeta, Status)        {}
func (NopListener) OnTransferTemporaryError(*FileMeta, error) {}
func (NopListener) OnTransferComplete(*FileMeta)              {}
func (NopListener) OnTransferError(*FileMeta, error)          {}
