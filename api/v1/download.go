package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jaskaranSM/drivedl/manager"
	"github.com/jaskaranSM/drivedl/types"
)

func DownloadHandler(ctx *fiber.Ctx, gdmanager *manager.GoogleDriveManager) error {
	var downloadRequest types.DownloadRequest
	err := ctx.BodyParser(&downloadRequest)
	if err != nil {
		return ctx.JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if downloadRequest.FileId == "" {
		ctx.SendStatus(400)
		return ctx.JSON(fiber.Map{
			"error": "provide file_id in body, bad request",
		})
	}
	gid, err := gdmanager.AddDownload(&manager.AddDownloadOpts{
		FileId:    downloadRequest.FileId,
		SavePath:  downloadRequest.SavePath,
		Check:     downloadRequest.Check,
		Overwrite: downloadRequest.Overwrite,
		Force:     downloadRequest.Force,
		Retry:     downloadRequest.Retry,
	})
	if err != nil {
		return ctx.JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"gid": gid,
	})
}
