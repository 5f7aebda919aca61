package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jaskaranSM/drivedl/service/gdrive"
	"github.com/jaskaranSM/drivedl/utils"
)

func FileMetadataHandler(ctx *fiber.Ctx) error {
	fileId := ctx.Params("fileId")
	if fileId == "" {
		ctx.SendStatus(400)
		return ctx.JSON(fiber.Map{
			"error": "provide fileId in param, bad request",
		})
	}

	client, err := gdrive.NewClient()
	if err != nil {
		return utils.HandleError(ctx, err)
	}
	file, err := client.Stat(ctx.Context(), fileId)
	if err != nil {
		ctx.SendStatus(404)
		return ctx.JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"file": file,
	})
}
