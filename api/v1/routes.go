package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jaskaranSM/drivedl/manager"
)

func AddRoutes(router fiber.Router, gdmanager *manager.GoogleDriveManager) {
	router.Post("/download", func(ctx *fiber.Ctx) error {
		return DownloadHandler(ctx, gdmanager)
	})
	router.Get("/status/:gid", func(ctx *fiber.Ctx) error {
		return StatusHandler(ctx, gdmanager)
	})
	router.Post("/cancel", func(ctx *fiber.Ctx) error {
		return CancelHandler(ctx, gdmanager)
	})
	router.Get("/filemetadata/:fileId", FileMetadataHandler)
}
