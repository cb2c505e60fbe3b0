// Package external holds clients for vendor systems the pipeline pulls
// artifacts from.
package external

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/sftp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
)

// SFTPConfig describes the payroll vendor's export drop.
type SFTPConfig struct {
	Username   string
	PrivateKey string
	Server     string // host:port
	Timeout    time.Duration
}

// ExportClient downloads payroll exports from the vendor SFTP drop.
type ExportClient struct {
	sshClient  *ssh.Client
	sftpClient *sftp.Client
}

func NewExportClient(config SFTPConfig) (*ExportClient, error) {
	signer, err := ssh.ParsePrivateKey([]byte(config.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	sshConfig := &ssh.ClientConfig{
		User:            config.Username,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         config.Timeout,
	}

	sshClient, err := ssh.Dial("tcp", config.Server, sshConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", config.Server, err)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, fmt.Errorf("failed to start sftp session: %w", err)
	}

	return &ExportClient{sshClient: sshClient, sftpClient: sftpClient}, nil
}

func (c *ExportClient) Close() error {
	if err := c.sftpClient.Close(); err != nil {
		c.sshClient.Close()
		return err
	}
	return c.sshClient.Close()
}

// FetchLocationExport downloads the Total By Location export for a month from
// the vendor's drop layout: /payroll/<year>-<month>/total_by_location.csv.
func (c *ExportClient) FetchLocationExport(year int, month int) ([]byte, error) {
	remotePath := fmt.Sprintf("/payroll/%d-%02d/total_by_location.csv", year, month)

	file, err := c.sftpClient.Open(remotePath)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", remotePath, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", remotePath, err)
	}

	log.WithFields(log.Fields{
		"remote_path": remotePath,
		"bytes":       len(content),
	}).Info("downloaded payroll export")

	return content, nil
}
