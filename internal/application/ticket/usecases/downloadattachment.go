package usecases

import (
	"context"
	stderrors "errors"
	"os"

	"github.com/synerjet/bendesk/internal/infrastructure/storage"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

type DownloadAttachmentUseCase struct {
	files  FileStorage
	logger logger.Interface
}

func NewDownloadAttachmentUseCase(files FileStorage, logger logger.Interface) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{files: files, logger: logger}
}

// Execute opens the stored file. The caller closes it.
func (uc *DownloadAttachmentUseCase) Execute(_ context.Context, filename string) (*os.File, error) {
	f, err := uc.files.Open(filename)
	switch {
	case err == nil:
		return f, nil
	case stderrors.Is(err, storage.ErrInvalidFilename):
		uc.logger.Warnw("rejected attachment path", "filename", filename)
		return nil, errors.NewBadRequestError("invalid filename")
	case stderrors.Is(err, storage.ErrFileNotFound):
		return nil, errors.NewNotFoundError("file not found")
	default:
		uc.logger.Errorw("failed to open attachment", "filename", filename, "error", err)
		return nil, errors.NewInternalError("failed to open file")
	}
}
