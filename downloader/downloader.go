package downloader

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/jaskaranSM/drivedl/logging"
)

func New(remote Remote, listener Listener, opts Options) *Downloader {
	if listener == nil {
		listener = NopListener{}
	}
	return &Downloader{
		remote:   remote,
		listener: listener,
		opts:     opts.withDefaults(),
	}
}

// Downloader ensures a verified local copy of a remote file exists,
// respecting the overwrite, force and retry options.
type Downloader struct {
	remote    Remote
	listener  Listener
	opts      Options
	mut       sync.Mutex
	completed int64
	total     int64
	name      string
}

func (d *Downloader) CompletedLength() int64 {
	d.mut.Lock()
	defer d.mut.Unlock()
	return d.completed
}

func (d *Downloader) TotalLength() int64 {
	d.mut.Lock()
	defer d.mut.Unlock()
	return d.total
}

func (d *Downloader) Name() string {
	d.mut.Lock()
	defer d.mut.Unlock()
	return d.name
}

func (d *Downloader) addCompleted(chunk int64) {
	d.mut.Lock()
	defer d.mut.Unlock()
	d.completed += chunk
}

func (d *Downloader) addTotal(size int64) {
	d.mut.Lock()
	defer d.mut.Unlock()
	d.total += size
}

func (d *Downloader) setName(name string) {
	d.mut.Lock()
	defer d.mut.Unlock()
	d.name = name
}

// Run downloads the remote file or folder identified by fileId into the
// configured save path.
func (d *Downloader) Run(ctx context.Context, fileId string) error {
	logger := logging.GetLogger()
	meta, err := d.remote.Stat(ctx, fileId)
	if err != nil {
		logger.Error("Could not fetch file metadata", zap.Error(err),
			zap.String("fileId", fileId),
		)
		d.listener.OnTransferError(nil, err)
		return err
	}
	d.setName(meta.Name)
	d.listener.OnTransferStart(meta)

	if meta.IsFolder() {
		err = d.downloadFolder(ctx, meta, d.opts.SavePath)
	} else {
		d.addTotal(meta.Size)
		err = d.downloadFile(ctx, meta, d.opts.SavePath)
	}
	if err != nil {
		d.listener.OnTransferError(meta, err)
		return err
	}
	d.listener.OnTransferComplete(meta)
	return nil
}

// downloadFolder walks the remote folder breadth first, mirroring its
// layout under localDir and applying the per-file contract to every child.
func (d *Downloader) downloadFolder(ctx context.Context, meta *FileMeta, localDir string) error {
	logger := logging.GetLogger()
	d.listener.OnTransferStatus(meta, StatusDownloading)
	q := newFolderQueue()
	q.Enqueue(newFolderItem(meta, filepath.Join(localDir, meta.Name)))
	for !q.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return err
		}
		item := q.Deque()
		err := os.MkdirAll(item.Path, 0755)
		if err != nil {
			logger.Error("Error while creating directories", zap.Error(err),
				zap.String("path", item.Path),
			)
			return err
		}
		children, err := d.remote.List(ctx, item.Meta.Id)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err = ctx.Err(); err != nil {
				return err
			}
			if child.IsFolder() {
				q.Enqueue(newFolderItem(child, filepath.Join(item.Path, child.Name)))
			} else {
				d.addTotal(child.Size)
				err = d.downloadFile(ctx, child, item.Path)
				if err != nil {
					return err
				}
			}
		}
	}
	d.listener.OnTransferStatus(meta, StatusDownloaded)
	return nil
}

// downloadFile decides whether the file needs transferring at all before
// handing off to the retry loop:
//   - force re-downloads unconditionally
//   - with check, a matching local file is kept and a corrupted one is only
//     replaced when overwrite is set
//   - without check, an existing file is kept unless overwrite is set
func (d *Downloader) downloadFile(ctx context.Context, meta *FileMeta, localDir string) error {
	logger := logging.GetLogger()
	path := filepath.Join(localDir, meta.Name)
	_, statErr := os.Stat(path)
	exists := statErr == nil

	if exists && !d.opts.Force {
		if d.opts.Check {
			digest, err := hashLocalFile(path)
			if err != nil {
				return err
			}
			if digest == meta.SHA256 {
				logger.Debug("Local copy already verified, skipping",
					zap.String("path", path),
				)
				d.listener.OnTransferStatus(meta, StatusAlreadyChecked)
				d.addCompleted(meta.Size)
				return nil
			}
			d.listener.OnTransferStatus(meta, StatusCorrupted)
			if !d.opts.Overwrite {
				logger.Error("Existing file failed verification and overwrite is off",
					zap.String("path", path),
				)
				return ErrFileExists
			}
		} else {
			d.listener.OnTransferStatus(meta, StatusAlreadyPresent)
			if !d.opts.Overwrite {
				logger.Debug("File already present, skipping",
					zap.String("path", path),
				)
				d.addCompleted(meta.Size)
				return nil
			}
		}
	}

	return d.transferWithRetry(ctx, meta, path)
}

// transferWithRetry runs the transfer at most opts.Retry+1 times, retrying
// only failures that can resolve on a second attempt.
func (d *Downloader) transferWithRetry(ctx context.Context, meta *FileMeta, path string) error {
	logger := logging.GetLogger()
	var err error
	for attempt := 0; attempt <= d.opts.Retry; attempt++ {
		if attempt > 0 {
			logger.Info("Retrying transfer", zap.Error(err),
				zap.String("name", meta.Name),
				zap.Int("attempt", attempt+1),
			)
			d.listener.OnTransferTemporaryError(meta, err)
		}
		err = d.transfer(ctx, meta, path)
		if err == nil {
			return nil
		}
		if !Retriable(err) {
			break
		}
	}
	d.listener.OnTransferStatus(meta, StatusFailed)
	return err
}

// transfer performs a single attempt: stream the media into the destination
// file and, with check on, verify the digest computed during the copy.
func (d *Downloader) transfer(ctx context.Context, meta *FileMeta, path string) error {
	logger := logging.GetLogger()
	d.listener.OnTransferStatus(meta, StatusDownloading)

	fileHandle, err := os.Create(path)
	if err != nil {
		return err
	}
	t := newFileTransfer(d, meta, fileHandle)

	var w io.Writer = t
	var verifier *checksumVerifier
	if d.opts.Check && meta.SHA256 != "" {
		verifier = newChecksumVerifier(meta.SHA256)
		w = io.MultiWriter(t, verifier)
	} else if d.opts.Check {
		// Some provider file types carry no checksum, nothing to verify.
		logger.Warn("No checksum reported for file, skipping verification",
			zap.String("name", meta.Name),
		)
	}

	_, err = d.remote.Fetch(ctx, meta.Id, w)
	closeErr := fileHandle.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		t.rollback()
		return err
	}

	if verifier != nil {
		if err = verifier.Verify(); err != nil {
			logger.Error("Downloaded file failed verification", zap.Error(err),
				zap.String("path", path),
			)
			t.rollback()
			return err
		}
		d.listener.OnTransferStatus(meta, StatusChecked)
		return nil
	}
	d.listener.OnTransferStatus(meta, StatusDownloaded)
	return nil
}
