package manager

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jaskaranSM/drivedl/downloader"
	"github.com/jaskaranSM/drivedl/logging"
	"github.com/jaskaranSM/drivedl/service/gdrive"
)

func NewGoogleDriveTransferStatus(gid string, savePath string, onTransferComplete func()) *GoogleDriveTransferStatus {
	return &GoogleDriveTransferStatus{
		gid:                            gid,
		savePath:                       savePath,
		onTransferCompleteUserCallback: onTransferComplete,
	}
}

// GoogleDriveTransferStatus tracks one queued download. It is the
// downloader.Listener for its transfer.
type GoogleDriveTransferStatus struct {
	dl                             *downloader.Downloader
	cancel                         context.CancelFunc
	isCompleted                    bool
	isFailed                       bool
	isObserverRunning              bool
	speed                          int64
	gid                            string
	savePath                       string
	failureError                   error
	onTransferCompleteUserCallback func()
}

func (g *GoogleDriveTransferStatus) SetDownloader(dl *downloader.Downloader) {
	g.dl = dl
}

func (g *GoogleDriveTransferStatus) SetCancelFunc(cancel context.CancelFunc) {
	g.cancel = cancel
}

func (g *GoogleDriveTransferStatus) StartSpeedObserver() {
	g.isObserverRunning = true
	go g.SpeedObserver()
}

func (g *GoogleDriveTransferStatus) StopSpeedObserver() {
	g.isObserverRunning = false
}

func (g *GoogleDriveTransferStatus) SpeedObserver() {
	last := g.CompletedLength()
	for g.isObserverRunning {
		now := g.CompletedLength()
		chunk := now - last
		g.speed = chunk
		last = now
		time.Sleep(1 * time.Second)
	}
}

func (g *GoogleDriveTransferStatus) OnTransferStart(file *downloader.FileMeta) {
	logger := logging.GetLogger()
	g.StartSpeedObserver()
	logger.Debug("on download start",
		zap.String("gid", g.gid),
		zap.String("name", file.Name),
	)
}

func (g *GoogleDriveTransferStatus) OnTransferUpdate(file *downloader.FileMeta, chunk int64) {
	logger := logging.GetLogger()
	logger.Debug("on download update",
		zap.String("gid", g.gid),
		zap.Int64("chunk", chunk),
	)
}

func (g *GoogleDriveTransferStatus) OnTransferStatus(file *downloader.FileMeta, status downloader.Status) {
	logger := logging.GetLogger()
	logger.Debug("on status change",
		zap.String("gid", g.gid),
		zap.String("name", file.Name),
		zap.String("status", status.String()),
	)
}

func (g *GoogleDriveTransferStatus) OnTransferTemporaryError(file *downloader.FileMeta, err error) {
	logger := logging.GetLogger()
	logger.Debug("on download temporary error", zap.Error(err),
		zap.String("gid", g.gid),
	)
}

func (g *GoogleDriveTransferStatus) OnTransferComplete(file *downloader.FileMeta) {
	logger := logging.GetLogger()
	g.isCompleted = true
	g.StopSpeedObserver()
	logger.Debug("on download complete",
		zap.String("gid", g.gid),
		zap.String("name", file.Name),
	)

	g.onTransferCompleteUserCallback()
}

func (g *GoogleDriveTransferStatus) OnTransferError(file *downloader.FileMeta, err error) {
	logger := logging.GetLogger()
	g.isFailed = true
	g.failureError = err
	g.StopSpeedObserver()
	logger.Debug("on download error", zap.Error(err),
		zap.String("gid", g.gid),
	)
}

func (g *GoogleDriveTransferStatus) CompletedLength() int64 {
	return g.dl.CompletedLength()
}

func (g *GoogleDriveTransferStatus) TotalLength() int64 {
	return g.dl.TotalLength()
}

func (g *GoogleDriveTransferStatus) Name() string {
	return g.dl.Name()
}

func (g *GoogleDriveTransferStatus) Speed() int64 {
	return g.speed
}

func (g *GoogleDriveTransferStatus) IsCompleted() bool {
	return g.isCompleted
}

func (g *GoogleDriveTransferStatus) IsFailed() bool {
	return g.isFailed
}

func (g *GoogleDriveTransferStatus) GetFailureError() error {
	return g.failureError
}

func (g *GoogleDriveTransferStatus) Cancel() {
	if g.cancel != nil {
		g.cancel()
	}
}

type AddDownloadOpts struct {
	FileId                     string
	SavePath                   string
	Check                      bool
	Overwrite                  bool
	Force                      bool
	Retry                      int
	Gid                        string
	OnDownloadCompleteCallback func()
}

func NewGoogleDriveManager() *GoogleDriveManager {
	return &GoogleDriveManager{
		queue: make(map[string]*GoogleDriveTransferStatus),
	}
}

type GoogleDriveManager struct {
	queue map[string]*GoogleDriveTransferStatus
}

func (g *GoogleDriveManager) GetTransferStatusByGid(gid string) *GoogleDriveTransferStatus {
	return g.queue[gid]
}

func (g *GoogleDriveManager) AddDownload(opts *AddDownloadOpts) (string, error) {
	if opts.Gid == "" {
		opts.Gid = uuid.NewString()
	}
	if opts.OnDownloadCompleteCallback == nil {
		opts.OnDownloadCompleteCallback = func() {}
	}
	status := NewGoogleDriveTransferStatus(opts.Gid, opts.SavePath, opts.OnDownloadCompleteCallback)
	client, err := gdrive.NewClient()
	if err != nil {
		return opts.Gid, err
	}
	dl := downloader.New(client, status, downloader.Options{
		SavePath:  opts.SavePath,
		Check:     opts.Check,
		Overwrite: opts.Overwrite,
		Force:     opts.Force,
		Retry:     opts.Retry,
	})
	ctx, cancel := context.WithCancel(context.Background())
	status.SetDownloader(dl)
	status.SetCancelFunc(cancel)
	g.queue[status.gid] = status
	go func() {
		defer cancel()
		_ = dl.Run(ctx, opts.FileId)
	}()
	return opts.Gid, nil
}
