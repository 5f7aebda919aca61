package gdrive

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"

	"github.com/jaskaranSM/drivedl/downloader"
	"github.com/jaskaranSM/drivedl/logging"
)

const metadataFields = "id, name, mimeType, size, sha256Checksum"

func toFileMeta(file *drive.File) *downloader.FileMeta {
	return &downloader.FileMeta{
		Id:       file.Id,
		Name:     file.Name,
		MimeType: file.MimeType,
		Size:     file.Size,
		SHA256:   file.Sha256Checksum,
	}
}

// Stat fetches the metadata of a single file.
func (gd *GoogleDriveClient) Stat(ctx context.Context, fileId string) (*downloader.FileMeta, error) {
	logger := logging.GetLogger()
	file, err := gd.DriveSrv.Files.Get(fileId).Fields(metadataFields).
		SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		logger.Error("Could not get file metadata", zap.Error(err),
			zap.String("fileId", fileId),
		)
		return nil, mapError(err)
	}
	return toFileMeta(file), nil
}

// List returns every direct child of a folder, following page tokens.
func (gd *GoogleDriveClient) List(ctx context.Context, parentId string) ([]*downloader.FileMeta, error) {
	logger := logging.GetLogger()
	var files []*downloader.FileMeta
	pageToken := ""
	query := fmt.Sprintf("'%s' in parents", parentId)
	for {
		logger.Debug("Listing files in folder",
			zap.String("query", query),
			zap.String("page token", pageToken),
		)

		request := gd.DriveSrv.Files.List().Q(query).OrderBy("name").
			SupportsAllDrives(true).IncludeTeamDriveItems(true).PageSize(1000).
			Fields("nextPageToken, files(" + metadataFields + ")").Context(ctx)

		if pageToken != "" {
			request = request.PageToken(pageToken)
		}

		res, err := request.Do()
		if err != nil {
			logger.Error("Error while listing gdrive directory contents", zap.Error(err),
				zap.String("parentId", parentId),
			)
			return files, mapError(err)
		}

		for _, f := range res.Files {
			files = append(files, toFileMeta(f))
		}
		pageToken = res.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return files, nil
}

// Fetch streams the media content of a file into w.
func (gd *GoogleDriveClient) Fetch(ctx context.Context, fileId string, w io.Writer) (int64, error) {
	res, err := gd.DriveSrv.Files.Get(fileId).SupportsAllDrives(true).
		Context(ctx).Download()
	if err != nil {
		return 0, mapError(err)
	}
	defer res.Body.Close()
	return io.Copy(w, res.Body)
}
