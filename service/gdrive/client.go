package gdrive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/jaskaranSM/drivedl/config"
	"github.com/jaskaranSM/drivedl/logging"
)

// GoogleDriveClient talks to the Google Drive v3 API. It implements
// downloader.Remote.
type GoogleDriveClient struct {
	CredentialFile string
	TokenFile      string
	SAKeyFile      string
	DriveSrv       *drive.Service
}

func NewClient() (*GoogleDriveClient, error) {
	cfg := config.Get()
	client := &GoogleDriveClient{
		CredentialFile: cfg.CredentialFile,
		TokenFile:      cfg.TokenFile,
		SAKeyFile:      cfg.SAKeyFile,
	}
	err := client.Authorize()
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (gd *GoogleDriveClient) Authorize() error {
	srv, err := gd.GetDriveService()
	if err != nil {
		return err
	}
	gd.DriveSrv = srv
	return nil
}

func (gd *GoogleDriveClient) GetDriveService() (srv *drive.Service, err error) {
	cfg := config.Get()
	logger := logging.GetLogger()

	client, err := gd.getAuthorizedHTTPClient(cfg.UseSA)
	if err != nil {
		logger.Error("Could not get authorized HTTP client", zap.Error(err),
			zap.Bool("UseSA", cfg.UseSA),
		)
		return
	}

	srv, err = drive.NewService(context.Background(), option.WithHTTPClient(client))
	if err != nil {
		logger.Error("Could not create new google drive service", zap.Error(err))
		return
	}
	return
}

func (gd *GoogleDriveClient) getAuthorizedHTTPClient(sa bool) (*http.Client, error) {
	var client *http.Client
	if sa {
		b, err := os.ReadFile(gd.SAKeyFile)
		if err != nil {
			return nil, err
		}
		jwtConfig, err := google.JWTConfigFromJSON(b, drive.DriveScope)
		if err != nil {
			return nil, err
		}
		client = jwtConfig.Client(context.Background())
	} else {
		b, err := os.ReadFile(gd.CredentialFile)
		if err != nil {
			return nil, err
		}
		// If modifying these scopes, delete your previously saved token.json.
		oauthConfig, err := google.ConfigFromJSON(b, drive.DriveScope)
		if err != nil {
			return nil, err
		}
		client = gd.getClient(oauthConfig)
	}
	return client, nil
}

func (gd *GoogleDriveClient) getClient(config *oauth2.Config) *http.Client {
	tok, err := gd.tokenFromFile(gd.TokenFile)
	if err != nil {
		tok = gd.getTokenFromWeb(config)
		gd.saveToken(gd.TokenFile, tok)
	}
	return config.Client(context.Background(), tok)
}

func (gd *GoogleDriveClient) getTokenFromWeb(config *oauth2.Config) *oauth2.Token {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	logger := logging.GetLogger()

	logger.Info(fmt.Sprintf("Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL),
	)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		logger.Fatal("Unable to read authorization code %v", zap.Error(err))
	}

	tok, err := config.Exchange(context.TODO(), authCode)
	if err != nil {
		logger.Error("Could not exchange config", zap.Error(err))
	}
	return tok
}

func (gd *GoogleDriveClient) tokenFromFile(file string) (*oauth2.Token, error) {
	logger := logging.GetLogger()
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer func(f *os.File) {
		err = f.Close()
		if err != nil {
			logger.Error("Could not close os file handle", zap.Error(err))
			return
		}
	}(f)

	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	if err != nil {
		logger.Error("Could not decode token json", zap.Error(err),
			zap.String("file path", file),
		)
	}
	return tok, err
}

// Saves a token to a file path.
func (gd *GoogleDriveClient) saveToken(path string, token *oauth2.Token) {
	logger := logging.GetLogger()
	logger.Info("Saving credential file", zap.String("file path", path))

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		logger.Error("Could not open file", zap.Error(err),
			zap.String("file path", path),
		)
	}

	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			logger.Error("Could not close os file handle", zap.Error(err))
			return
		}
	}(f)

	err = json.NewEncoder(f).Encode(token)
	if err != nil {
		logger.Error("Could not encode token json", zap.Error(err),
			zap.String("file path", path),
		)
		return
	}
}
