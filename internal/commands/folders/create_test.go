package folders

import (
	"testing"

	"github.com/deomiarn/securevault/internal/cli"
	"github.com/deomiarn/securevault/internal/cloud/vault"
	"github.com/deomiarn/securevault/internal/utils/test/assert"
	"github.com/deomiarn/securevault/internal/utils/test/mock"
)

func TestFoldersCreateHandler(t *testing.T) {
	for _, tc := range []struct {
		description     string
		inputs          createInputs
		expectedRequest vault.CreateFolderRequest
	}{
		{
			description:     "Should create a top level folder",
			inputs:          createInputs{name: "work"},
			expectedRequest: vault.CreateFolderRequest{Name: "work"},
		},
		{
			description:     "Should create a folder nested under a parent path",
			inputs:          createInputs{name: "staging", parent: "infra"},
			expectedRequest: vault.CreateFolderRequest{Name: "staging", ParentFolderID: "f1"},
		},
		{
			description:     "Should create a folder nested under a parent id",
			inputs:          createInputs{name: "eu", parent: "f2"},
			expectedRequest: vault.CreateFolderRequest{Name: "eu", ParentFolderID: "f2"},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			out, ui := mock.NewUI()

			var capturedRequest vault.CreateFolderRequest
			client := newFoldersClient()
			client.CreateFolderFn = func(payload vault.CreateFolderRequest) (vault.Folder, error) {
				capturedRequest = payload
				return vault.Folder{ID: "f9", Name: payload.Name}, nil
			}

			cmd := &CommandCreate{tc.inputs}
			assert.Nil(t, cmd.Handler(nil, ui, cli.Clients{Vault: client}))

			assert.Equal(t, tc.expectedRequest, capturedRequest)
			assert.Equal(t, "Successfully created folder "+tc.inputs.name+", id: f9\n", out.String())
		})
	}

	t.Run("Should fail with an unknown parent", func(t *testing.T) {
		_, ui := mock.NewUI()

		cmd := &CommandCreate{createInputs{name: "eu", parent: "infra/nope"}}
		err := cmd.Handler(nil, ui, cli.Clients{Vault: newFoldersClient()})

		assert.Equal(t, cli.ErrFolderNotFound{Folder: "infra/nope"}, err)
	})
}

func TestFoldersCreateInputs(t *testing.T) {
	t.Run("Should prompt for the folder name", func(t *testing.T) {
		_, console, _, ui, consoleErr := mock.NewVT10XConsole()
		assert.Nil(t, consoleErr)
		defer console.Close()

		doneCh := make(chan struct{})
		go func() {
			defer close(doneCh)
			console.ExpectString("Folder Name")
			console.SendLine("work")
			console.ExpectEOF()
		}()

		var inputs createInputs
		err := inputs.Resolve(nil, ui)

		console.Tty().Close() // flush the writers
		<-doneCh              // wait for procedure to complete

		assert.Nil(t, err)
		assert.Equal(t, "work", inputs.name)
	})
}
