package utils

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jaskaranSM/drivedl/logging"
)

func HandleError(ctx *fiber.Ctx, err error) error {
	logger := logging.GetLogger()
	logger.Error("Error occurred", zap.Error(err))
	return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{"Detail": "internal server error"})
}

func GetFolderSize(filePath string) (int64, error) {
	var size int64
	err := filepath.Walk(filePath, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return err
	})
	return size, err
}

func GetPathSize(filePath string) (int64, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	fileInfo, err := file.Stat()
	if err != nil {
		return 0, err
	}
	if fileInfo.IsDir() {
		return GetFolderSize(filePath)
	}
	return fileInfo.Size(), nil
}

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count in a human readable unit.
func FormatSize(size int64) string {
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit += 1
	}
	return fmt.Sprintf("%.2f %s", value, sizeUnits[unit])
}

// FormatProgress renders completed/total as a percentage. A zero total
// counts as fully complete.
func FormatProgress(completed int64, total int64) string {
	if total <= 0 {
		return "100.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(completed)/float64(total)*100)
}
