package helper

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// UploadFile pushes a file to Cloudinary under folder and returns its public URL
func UploadFile(file io.Reader, folder, name string) (string, error) {
	cld := InitCloudinary()

	result, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     fmt.Sprintf("%s_%d", name, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
