package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apiv1 "github.com/jaskaranSM/drivedl/api/v1"
	"github.com/jaskaranSM/drivedl/config"
	"github.com/jaskaranSM/drivedl/downloader"
	"github.com/jaskaranSM/drivedl/logging"
	"github.com/jaskaranSM/drivedl/manager"
	"github.com/jaskaranSM/drivedl/service/gdrive"
	"github.com/jaskaranSM/drivedl/utils"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		runServer()
		return
	}
	runDownload()
}

func runDownload() {
	logger := logging.GetLogger()

	fs := flag.NewFlagSet("drivedl", flag.ExitOnError)
	savePath := fs.String("save_path", ".", "the path to save the files")
	check := fs.Bool("check", false, "check the sha256 of the files")
	overwrite := fs.Bool("overwrite", false, "overwrite the file if it already exists but does not match the sha256")
	force := fs.Bool("force", false, "force the download of the file even if it already exists")
	retry := fs.Int("retry", 0, "the number of retries in case of error (implies -check)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: drivedl [flags] file_id\n")
		fmt.Fprintf(fs.Output(), "       drivedl serve\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	fileId := fs.Arg(0)

	client, err := gdrive.NewClient()
	if err != nil {
		logger.Fatal("Could not authorize google drive client", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dl := downloader.New(client, &consoleListener{logger: logger}, downloader.Options{
		SavePath:  *savePath,
		Check:     *check,
		Overwrite: *overwrite,
		Force:     *force,
		Retry:     *retry,
	})
	if err = dl.Run(ctx, fileId); err != nil {
		logger.Error("Download failed", zap.Error(err),
			zap.String("fileId", fileId),
		)
		os.Exit(1)
	}

	outPath := filepath.Join(*savePath, dl.Name())
	if size, sizeErr := utils.GetPathSize(outPath); sizeErr == nil {
		logger.Info("Saved",
			zap.String("path", outPath),
			zap.String("size", utils.FormatSize(size)),
		)
	}
}

func runServer() {
	cfg := config.Get()
	logger := logging.GetLogger()

	gdmanager := manager.NewGoogleDriveManager()
	app := fiber.New(fiber.Config{
		Prefork: cfg.Prefork,
	})
	apiv1.AddRoutes(app.Group("/api/v1"), gdmanager)

	logger.Info("Starting api server", zap.Int("port", cfg.Port))
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

// consoleListener reports transfer progress on the terminal logger.
type consoleListener struct {
	logger *zap.Logger
	total  int64
	done   int64
}

func (c *consoleListener) OnTransferStart(file *downloader.FileMeta) {
	c.total = file.Size
	c.logger.Info("Starting download",
		zap.String("name", file.Name),
		zap.String("size", utils.FormatSize(file.Size)),
	)
}

func (c *consoleListener) OnTransferUpdate(file *downloader.FileMeta, chunk int64) {
	c.done += chunk
	c.logger.Debug("Transfer update",
		zap.String("name", file.Name),
		zap.String("progress", utils.FormatProgress(c.done, c.total)),
	)
}

func (c *consoleListener) OnTransferStatus(file *downloader.FileMeta, status downloader.Status) {
	c.logger.Info(file.Name,
		zap.String("status", status.String()),
	)
}

func (c *consoleListener) OnTransferTemporaryError(file *downloader.FileMeta, err error) {
	c.logger.Warn("Transfer attempt failed, retrying", zap.Error(err),
		zap.String("name", file.Name),
	)
}

func (c *consoleListener) OnTransferComplete(file *downloader.FileMeta) {
	c.logger.Info("Download complete",
		zap.String("name", file.Name),
		zap.String("size", utils.FormatSize(c.total)),
	)
}

func (c *consoleListener) OnTransferError(file *downloader.FileMeta, err error) {
}
