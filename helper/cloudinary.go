package helper

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"waitify/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// UploadPrescription stores a prescription document under
// prescriptions/{patientId}_{appointmentId}_{random}.{ext} and returns the
// public URL.
func UploadPrescription(ctx context.Context, fileHeader *multipart.FileHeader, patientId, appointmentId uint) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	ext := strings.TrimPrefix(filepath.Ext(fileHeader.Filename), ".")
	if ext == "" {
		ext = "pdf"
	}
	random := strings.Split(uuid.NewString(), "-")[0]
	publicId := fmt.Sprintf("prescriptions/%d_%d_%s.%s", patientId, appointmentId, random, ext)

	cld := InitCloudinary()
	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicId,
		ResourceType: "auto",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
