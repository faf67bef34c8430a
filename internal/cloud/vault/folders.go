package vault

import (
	"net/http"
	"strings"

	"github.com/deomiarn/securevault/internal/utils/api"
)

const (
	foldersPath       = "/folders"
	folderPathPattern = foldersPath + "/%s"
)

// Folder is a SecureVault folder along with its nested folders
type Folder struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ParentFolderID string   `json:"parentFolderId,omitempty"`
	ChildFolders   []Folder `json:"childFolders,omitempty"`
	SecretCount    int      `json:"secretCount"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// CreateFolderRequest is the payload to create a folder
type CreateFolderRequest struct {
	Name           string `json:"name"`
	ParentFolderID string `json:"parentFolderId,omitempty"`
}

// UpdateFolderRequest is the payload to rename or move a folder
type UpdateFolderRequest struct {
	Name           string `json:"name,omitempty"`
	ParentFolderID string `json:"parentFolderId,omitempty"`
}

// FolderEntry is a folder placed within a flattened folder tree
type FolderEntry struct {
	Folder
	Depth int
	Path  string
}

// FlattenFolders walks the folder trees depth first and returns
// every folder along with its depth and slash-separated path
func FlattenFolders(folders []Folder) []FolderEntry {
	var entries []FolderEntry

	var walk func(folders []Folder, depth int, parents []string)
	walk = func(folders []Folder, depth int, parents []string) {
		for _, folder := range folders {
			path := append(append([]string{}, parents...), folder.Name)
			entries = append(entries, FolderEntry{folder, depth, strings.Join(path, "/")})
			walk(folder.ChildFolders, depth+1, path)
		}
	}
	walk(folders, 0, nil)

	return entries
}

func (c *client) Folders() ([]Folder, error) {
	res, err := c.do(http.MethodGet, foldersPath, api.RequestOptions{})
	if err != nil {
		return nil, err
	}

	var folders []Folder
	if err := decodeJSON(res, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (c *client) Folder(folderID string) (Folder, error) {
	res, err := c.do(http.MethodGet, api.PathEscape(folderPathPattern, folderID), api.RequestOptions{})
	if err != nil {
		return Folder{}, err
	}

	var folder Folder
	if err := decodeJSON(res, &folder); err != nil {
		return Folder{}, err
	}
	return folder, nil
}

func (c *client) CreateFolder(payload CreateFolderRequest) (Folder, error) {
	res, err := c.doJSON(http.MethodPost, foldersPath, payload, api.RequestOptions{})
	if err != nil {
		return Folder{}, err
	}

	var folder Folder
	if err := decodeJSON(res, &folder); err != nil {
		return Folder{}, err
	}
	return folder, nil
}

func (c *client) UpdateFolder(folderID string, payload UpdateFolderRequest) (Folder, error) {
	res, err := c.doJSON(http.MethodPut, api.PathEscape(folderPathPattern, folderID), payload, api.RequestOptions{})
	if err != nil {
		return Folder{}, err
	}

	var folder Folder
	if err := decodeJSON(res, &folder); err != nil {
		return Folder{}, err
	}
	return folder, nil
}

func (c *client) DeleteFolder(folderID string) error {
	res, err := c.do(http.MethodDelete, api.PathEscape(folderPathPattern, folderID), api.RequestOptions{})
	if err != nil {
		return err
	}
	return res.Body.Close()
}
