package tools

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everydev1618/arcane-mcp/arcane"
)

// fakeBackend answers "METHOD path" keys with canned JSON and records calls.
type fakeBackend struct {
	mu     sync.Mutex
	routes map[string]string
	errs   map[string]error
	calls  []string
	bodies map[string]any
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		routes: map[string]string{},
		errs:   map[string]error{},
		bodies: map[string]any{},
	}
}

func (f *fakeBackend) on(key, body string) *fakeBackend {
	f.routes[key] = body
	return f
}

func (f *fakeBackend) fail(key string, err error) *fakeBackend {
	f.errs[key] = err
	return f
}

func (f *fakeBackend) Do(ctx context.Context, method, path string, body any) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := method + " " + path
	f.calls = append(f.calls, key)
	if body != nil {
		f.bodies[key] = body
	}
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	if resp, ok := f.routes[key]; ok {
		return []byte(resp), nil
	}
	return nil, &arcane.APIError{Status: 404, Message: "Not Found"}
}

// bodyJSON returns the recorded request body for key as generic JSON.
func (f *fakeBackend) bodyJSON(t *testing.T, key string) map[string]any {
	t.Helper()
	raw, err := json.Marshal(f.bodies[key])
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

const prodEnvs = `{"success":true,"data":[{"id":"env-1","name":"production"},{"id":"env-2","name":"production-eu"}]}`

func newArcaneTools(t *testing.T, backend *fakeBackend) *Tools {
	t.Helper()
	tools := NewTools()
	require.NoError(t, RegisterArcane(tools, backend))
	return tools
}

func call(t *testing.T, tools *Tools, name string, params map[string]any) Result {
	t.Helper()
	return Outcome(tools.Execute(context.Background(), name, params))
}

func TestRegisterArcaneCatalog(t *testing.T) {
	tools := newArcaneTools(t, newFakeBackend())

	want := []string{
		"arcane_environment_list", "arcane_environment_get", "arcane_environment_create",
		"arcane_environment_update", "arcane_environment_delete",
		"arcane_stack_list", "arcane_stack_get", "arcane_stack_deploy", "arcane_stack_update",
		"arcane_stack_delete", "arcane_stack_start", "arcane_stack_stop", "arcane_stack_restart",
		"arcane_stack_pull",
		"arcane_container_list", "arcane_container_get", "arcane_container_start",
		"arcane_container_stop", "arcane_container_restart", "arcane_container_kill",
		"arcane_image_list", "arcane_image_pull", "arcane_image_remove", "arcane_image_prune",
		"arcane_volume_list", "arcane_volume_inspect", "arcane_volume_remove", "arcane_volume_prune",
		"arcane_network_list", "arcane_network_inspect", "arcane_network_remove", "arcane_network_prune",
		"arcane_template_list", "arcane_template_get", "arcane_template_create",
		"arcane_template_update", "arcane_template_delete",
		"arcane_version",
	}
	assert.Equal(t, want, tools.Names())

	for _, s := range tools.Schema() {
		assert.NotEmpty(t, s.Description, s.Name)
		assert.Equal(t, "object", s.InputSchema["type"], s.Name)
	}
}

func TestRegisterArcaneTwiceFails(t *testing.T) {
	tools := newArcaneTools(t, newFakeBackend())
	assert.ErrorIs(t, RegisterArcane(tools, newFakeBackend()), ErrToolAlreadyRegistered)
}

func TestEnvironmentListDefaultsLimit(t *testing.T) {
	backend := newFakeBackend().on("GET /environments?limit=50", prodEnvs)
	res := call(t, newArcaneTools(t, backend), "arcane_environment_list", nil)

	require.False(t, res.IsError, res.Text)
	assert.JSONEq(t, `[{"id":"env-1","name":"production"},{"id":"env-2","name":"production-eu"}]`, res.Text)
	assert.True(t, strings.HasPrefix(res.Text, "[\n  {"), "two-space indent: %q", res.Text)
}

func TestEnvironmentListSearch(t *testing.T) {
	backend := newFakeBackend().on("GET /environments?search=prod&limit=5", `{"success":true}`)
	res := call(t, newArcaneTools(t, backend), "arcane_environment_list", map[string]any{
		"search": "prod",
		"limit":  float64(5),
	})

	require.False(t, res.IsError, res.Text)
	assert.Equal(t, "[]", res.Text)
}

func TestEnvironmentGetByName(t *testing.T) {
	backend := newFakeBackend().
		on("GET /environments?search=production&limit=50", prodEnvs).
		on("GET /environments/env-1", `{"success":true,"data":{"id":"env-1","name":"production","status":"online"}}`)

	res := call(t, newArcaneTools(t, backend), "arcane_environment_get", map[string]any{
		"environmentName": "production",
	})

	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, `"status": "online"`)
	assert.Equal(t, []string{"GET /environments?search=production&limit=50", "GET /environments/env-1"}, backend.calls)
}

func TestGetKeepsEveryBackendField(t *testing.T) {
	backend := newFakeBackend().
		on("GET /environments/env-1", `{"success":true,"data":{"id":"env-1","name":"production","lastSeen":"2025-01-02T03:04:05Z","agentVersion":"1.2.3","tags":["<edge>"]}}`)

	res := call(t, newArcaneTools(t, backend), "arcane_environment_get", map[string]any{"environmentId": "env-1"})

	require.False(t, res.IsError, res.Text)
	assert.JSONEq(t, `{"id":"env-1","name":"production","lastSeen":"2025-01-02T03:04:05Z","agentVersion":"1.2.3","tags":["<edge>"]}`, res.Text)
	assert.Contains(t, res.Text, `"agentVersion": "1.2.3"`)
	assert.Contains(t, res.Text, `"<edge>"`)
}

func TestUnmodeledFieldTypesDoNotFailTools(t *testing.T) {
	backend := newFakeBackend().
		on("GET /environments/e1/containers/c1", `{"success":true,"data":{"id":"c1","name":"/web","created":1700000000,"state":{"running":true}}}`).
		on("GET /environments/e1/containers", `{"success":true,"data":[{"id":"c1","names":["/web"],"created":"yesterday","ports":null}]}`).
		on("GET /environments/e1/volumes/data", `{"success":true,"data":{"name":"data","labels":{"app":"web"},"scope":"local","options":null,"size":"12MB"}}`)
	tools := newArcaneTools(t, backend)

	res := call(t, tools, "arcane_container_get", map[string]any{"environmentId": "e1", "containerId": "c1"})
	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, `"created": 1700000000`)

	res = call(t, tools, "arcane_container_list", map[string]any{"environmentId": "e1"})
	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, `"created": "yesterday"`)

	res = call(t, tools, "arcane_volume_inspect", map[string]any{"environmentId": "e1", "volumeName": "data"})
	require.False(t, res.IsError, res.Text)
	assert.JSONEq(t, `{"name":"data","labels":{"app":"web"},"scope":"local","options":null,"size":"12MB"}`, res.Text)
}

func TestEnvironmentGetByIDSkipsLookup(t *testing.T) {
	backend := newFakeBackend().on("GET /environments/env-9", `{"success":true,"data":{"id":"env-9","name":"x"}}`)
	res := call(t, newArcaneTools(t, backend), "arcane_environment_get", map[string]any{
		"environmentId":   "env-9",
		"environmentName": "ignored",
	})

	require.False(t, res.IsError, res.Text)
	assert.Equal(t, []string{"GET /environments/env-9"}, backend.calls)
}

func TestEnvironmentGetNeedsIdentifier(t *testing.T) {
	backend := newFakeBackend()
	res := call(t, newArcaneTools(t, backend), "arcane_environment_get", nil)

	assert.Equal(t, Result{Text: "Error: Either environmentId or environmentName must be provided", IsError: true}, res)
	assert.Empty(t, backend.calls)
}

func TestEnvironmentNotFound(t *testing.T) {
	backend := newFakeBackend().on("GET /environments?search=staging&limit=50", prodEnvs)
	res := call(t, newArcaneTools(t, backend), "arcane_environment_delete", map[string]any{
		"environmentName": "staging",
	})

	assert.True(t, res.IsError)
	assert.Equal(t, "Error: No environment found with name 'staging'. Available environments: production, production-eu", res.Text)
}

func TestEnvironmentCreate(t *testing.T) {
	backend := newFakeBackend().on("POST /environments", `{"success":true,"data":{"id":"env-3","name":"edge"}}`)
	res := call(t, newArcaneTools(t, backend), "arcane_environment_create", map[string]any{
		"name":    "edge",
		"apiUrl":  "http://edge:3553",
		"enabled": true,
	})

	require.False(t, res.IsError, res.Text)
	require.True(t, strings.HasPrefix(res.Text, "Environment created successfully:\n"), res.Text)
	assert.JSONEq(t, `{"id":"env-3","name":"edge"}`,
		strings.TrimPrefix(res.Text, "Environment created successfully:\n"))

	assert.Equal(t, map[string]any{"name": "edge", "apiUrl": "http://edge:3553", "enabled": true},
		backend.bodyJSON(t, "POST /environments"))
}

func TestEnvironmentCreateRequiresFields(t *testing.T) {
	backend := newFakeBackend()
	_, err := newArcaneTools(t, backend).Execute(context.Background(), "arcane_environment_create", map[string]any{
		"name": "edge",
	})

	var ae *ArgsError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, err.Error(), "apiUrl is required")
	assert.Empty(t, backend.calls)
}

func TestEnvironmentUpdateSendsOnlyDTO(t *testing.T) {
	backend := newFakeBackend().on("PUT /environments/env-1", `{"success":true,"data":{"id":"env-1","name":"prod"}}`)
	res := call(t, newArcaneTools(t, backend), "arcane_environment_update", map[string]any{
		"environmentId": "env-1",
		"name":          "prod",
		"enabled":       false,
	})

	require.False(t, res.IsError, res.Text)
	assert.True(t, strings.HasPrefix(res.Text, "Environment updated successfully:\n"))
	assert.Equal(t, map[string]any{"name": "prod", "enabled": false}, backend.bodyJSON(t, "PUT /environments/env-1"))
}

func TestDeleteMessages(t *testing.T) {
	tests := []struct {
		name   string
		tool   string
		params map[string]any
		key    string
		body   string
		want   string
	}{
		{"environment default", "arcane_environment_delete", map[string]any{"environmentId": "e1"},
			"DELETE /environments/e1", `{"success":true}`, "Environment deleted successfully"},
		{"environment backend message", "arcane_environment_delete", map[string]any{"environmentId": "e1"},
			"DELETE /environments/e1", `{"success":true,"message":"gone"}`, "gone"},
		{"stack default", "arcane_stack_delete", map[string]any{"environmentId": "e1", "stackId": "s1"},
			"DELETE /environments/e1/projects/s1/destroy", `{"success":true}`, "Stack deleted successfully"},
		{"template default", "arcane_template_delete", map[string]any{"templateId": "t1"},
			"DELETE /templates/t1", `{"success":true}`, "Template deleted successfully"},
		{"image default", "arcane_image_remove", map[string]any{"environmentId": "e1", "imageId": "sha256:abc"},
			"DELETE /environments/e1/images/sha256:abc", `{"success":true}`, "Image 'sha256:abc' removed successfully"},
		{"volume default", "arcane_volume_remove", map[string]any{"environmentId": "e1", "volumeName": "data"},
			"DELETE /environments/e1/volumes/data", `{"success":true}`, "Volume 'data' removed successfully"},
		{"network default", "arcane_network_remove", map[string]any{"environmentId": "e1", "networkId": "n1"},
			"DELETE /environments/e1/networks/n1", `{"success":true}`, "Network 'n1' removed successfully"},
		{"network backend message", "arcane_network_remove", map[string]any{"environmentId": "e1", "networkId": "n1"},
			"DELETE /environments/e1/networks/n1", `{"success":true,"message":"Network removed"}`, "Network removed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend().on(tt.key, tt.body)
			res := call(t, newArcaneTools(t, backend), tt.tool, tt.params)
			assert.Equal(t, Result{Text: tt.want}, res)
		})
	}
}

func TestStackListSendsSearchOnly(t *testing.T) {
	backend := newFakeBackend().on("GET /environments/e1/projects?search=web", `{"success":true,"data":[{"id":"s1","name":"web"}]}`)
	res := call(t, newArcaneTools(t, backend), "arcane_stack_list", map[string]any{
		"environmentId": "e1",
		"search":        "web",
		"limit":         float64(10),
	})

	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, `"name": "web"`)
}

func TestStackDeploy(t *testing.T) {
	backend := newFakeBackend().on("POST /environments/e1/projects", `{"success":true}`)
	res := call(t, newArcaneTools(t, backend), "arcane_stack_deploy", map[string]any{
		"environmentId":  "e1",
		"name":           "web",
		"composeContent": "services: {}",
	})

	assert.Equal(t, Result{Text: "Stack 'web' deployed successfully in environment 'e1'"}, res)
	assert.Equal(t, map[string]any{"name": "web", "composeContent": "services: {}"},
		backend.bodyJSON(t, "POST /environments/e1/projects"))
}

func TestStackUpdate(t *testing.T) {
	backend := newFakeBackend().on("PUT /environments/e1/projects/s1", `{"success":true,"data":{"id":"s1","name":"web2"}}`)
	res := call(t, newArcaneTools(t, backend), "arcane_stack_update", map[string]any{
		"environmentId": "e1",
		"stackId":       "s1",
		"name":          "web2",
	})

	require.False(t, res.IsError, res.Text)
	assert.True(t, strings.HasPrefix(res.Text, "Stack updated successfully:\n"))
	assert.Equal(t, map[string]any{"name": "web2"}, backend.bodyJSON(t, "PUT /environments/e1/projects/s1"))
}

func TestStackLifecycle(t *testing.T) {
	tests := []struct {
		tool string
		verb string
		want string
	}{
		{"arcane_stack_start", "up", "Stack 'web' started successfully in environment 'e1'"},
		{"arcane_stack_stop", "down", "Stack 'web' stopped successfully in environment 'e1'"},
		{"arcane_stack_restart", "restart", "Stack 'web' restarted successfully in environment 'e1'"},
		{"arcane_stack_pull", "pull-project-images", "Images pulled successfully for stack 'web' in environment 'e1'"},
	}

	for _, tt := range tests {
		t.Run(tt.tool+" by name", func(t *testing.T) {
			backend := newFakeBackend().
				on("GET /environments/e1/projects?search=web", `{"success":true,"data":[{"id":"s1","name":"web"}]}`).
				on("POST /environments/e1/projects/s1/"+tt.verb, `{"success":true}`)

			res := call(t, newArcaneTools(t, backend), tt.tool, map[string]any{
				"environmentId": "e1",
				"stackName":     "web",
			})
			assert.Equal(t, Result{Text: tt.want}, res)
			assert.Equal(t, []string{
				"GET /environments/e1/projects?search=web",
				"POST /environments/e1/projects/s1/" + tt.verb,
			}, backend.calls)
		})

		t.Run(tt.tool+" by id fetches name first", func(t *testing.T) {
			backend := newFakeBackend().
				on("GET /environments/e1/projects/s1", `{"success":true,"data":{"id":"s1","name":"web"}}`).
				on("POST /environments/e1/projects/s1/"+tt.verb, `{"success":true}`)

			res := call(t, newArcaneTools(t, backend), tt.tool, map[string]any{
				"environmentId": "e1",
				"stackId":       "s1",
			})
			assert.Equal(t, Result{Text: tt.want}, res)
			assert.Equal(t, []string{
				"GET /environments/e1/projects/s1",
				"POST /environments/e1/projects/s1/" + tt.verb,
			}, backend.calls)
		})
	}
}

func TestStackActionFailure(t *testing.T) {
	backend := newFakeBackend().
		on("GET /environments/e1/projects/s1", `{"success":true,"data":{"id":"s1","name":"web"}}`).
		fail("POST /environments/e1/projects/s1/up", &arcane.APIError{Status: 500, Message: "compose failed"})

	res := call(t, newArcaneTools(t, backend), "arcane_stack_start", map[string]any{
		"environmentId": "e1",
		"stackId":       "s1",
	})
	assert.Equal(t, Result{Text: "Error: compose failed", IsError: true}, res)
}

func TestContainerLifecycle(t *testing.T) {
	const containers = `{"success":true,"data":[{"id":"abc","names":["/web"]},{"id":"def","names":["/db"]}]}`

	tests := []struct {
		tool string
		verb string
		past string
	}{
		{"arcane_container_start", "start", "started"},
		{"arcane_container_stop", "stop", "stopped"},
		{"arcane_container_restart", "restart", "restarted"},
		{"arcane_container_kill", "update", "killed"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			backend := newFakeBackend().
				on("GET /environments/e1/containers", containers).
				on("POST /environments/e1/containers/abc/"+tt.verb, `{"success":true}`)

			res := call(t, newArcaneTools(t, backend), tt.tool, map[string]any{
				"environmentId": "e1",
				"containerName": "web",
			})
			assert.Equal(t, Result{Text: "Container 'web' " + tt.past + " successfully in environment 'e1'"}, res)
		})
	}
}

func TestContainerKillBody(t *testing.T) {
	backend := newFakeBackend().
		on("GET /environments/e1/containers/abc", `{"success":true,"data":{"id":"abc","name":"/web"}}`).
		on("POST /environments/e1/containers/abc/update", `{"success":true}`)

	res := call(t, newArcaneTools(t, backend), "arcane_container_kill", map[string]any{
		"environmentId": "e1",
		"containerId":   "abc",
	})

	assert.Equal(t, Result{Text: "Container '/web' killed successfully in environment 'e1'"}, res)
	assert.Equal(t, map[string]any{"action": "kill"}, backend.bodyJSON(t, "POST /environments/e1/containers/abc/update"))
}

func TestContainerNotFound(t *testing.T) {
	backend := newFakeBackend().on("GET /environments/e1/containers", `{"success":true,"data":[{"id":"abc","names":["/web"]}]}`)
	res := call(t, newArcaneTools(t, backend), "arcane_container_get", map[string]any{
		"environmentId": "e1",
		"containerName": "cache",
	})

	assert.Equal(t, Result{
		Text:    "Error: No container found with name 'cache' in environment 'e1'. Available containers: web",
		IsError: true,
	}, res)
}

func TestImagePull(t *testing.T) {
	backend := newFakeBackend().on("POST /environments/e1/images/pull", `{"success":true}`)
	res := call(t, newArcaneTools(t, backend), "arcane_image_pull", map[string]any{
		"environmentId": "e1",
		"imageName":     "nginx:latest",
	})

	assert.Equal(t, Result{Text: "Image 'nginx:latest' pulled successfully"}, res)
	assert.Equal(t, map[string]any{"imageName": "nginx:latest"}, backend.bodyJSON(t, "POST /environments/e1/images/pull"))
}

func TestImagePullRejectsInvalidReference(t *testing.T) {
	backend := newFakeBackend()
	_, err := newArcaneTools(t, backend).Execute(context.Background(), "arcane_image_pull", map[string]any{
		"environmentId": "e1",
		"imageName":     "Not A Valid Image",
	})

	var ae *ArgsError
	require.ErrorAs(t, err, &ae)
	assert.Empty(t, backend.calls)
}

func TestPruneTexts(t *testing.T) {
	tests := []struct {
		tool string
		key  string
		body string
		want string
	}{
		{"arcane_image_prune", "POST /environments/e1/images/prune",
			`{"success":true,"data":{"imagesDeleted":3,"spaceReclaimed":1500000}}`,
			"Pruned 3 images, reclaimed 1500000 bytes (1.5MB)"},
		{"arcane_image_prune", "POST /environments/e1/images/prune",
			`{"success":true,"data":{"imagesDeleted":0,"spaceReclaimed":0}}`,
			"Pruned 0 images, reclaimed 0 bytes"},
		{"arcane_volume_prune", "POST /environments/e1/volumes/prune",
			`{"success":true,"data":{"volumesDeleted":2,"spaceReclaimed":2048}}`,
			"Pruned 2 volumes, reclaimed 2048 bytes (2.048kB)"},
		{"arcane_network_prune", "POST /environments/e1/networks/prune",
			`{"success":true,"data":{"networksDeleted":4}}`,
			"Pruned 4 networks"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			backend := newFakeBackend().on(tt.key, tt.body)
			res := call(t, newArcaneTools(t, backend), tt.tool, map[string]any{"environmentId": "e1"})
			assert.Equal(t, Result{Text: tt.want}, res)
		})
	}
}

func TestInspectTools(t *testing.T) {
	backend := newFakeBackend().
		on("GET /environments/e1/volumes/data", `{"success":true,"data":{"name":"data","driver":"local","mountpoint":"/var/lib"}}`).
		on("GET /environments/e1/networks/n1", `{"success":true,"data":{"id":"n1","name":"bridge"}}`)
	tools := newArcaneTools(t, backend)

	res := call(t, tools, "arcane_volume_inspect", map[string]any{"environmentId": "e1", "volumeName": "data"})
	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, `"driver": "local"`)

	res = call(t, tools, "arcane_network_inspect", map[string]any{"environmentId": "e1", "networkId": "n1"})
	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, `"name": "bridge"`)
}

func TestTemplateTools(t *testing.T) {
	backend := newFakeBackend().
		on("GET /templates?search=redis", `{"success":true,"data":[{"id":"t1","name":"redis"}]}`).
		on("POST /templates", `{"success":true,"data":{"id":"t2","name":"pg"}}`).
		on("PUT /templates/t2", `{"success":true,"data":{"id":"t2","name":"postgres"}}`)
	tools := newArcaneTools(t, backend)

	res := call(t, tools, "arcane_template_list", map[string]any{"search": "redis"})
	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, `"id": "t1"`)

	res = call(t, tools, "arcane_template_create", map[string]any{
		"name":           "pg",
		"composeContent": "services: {}",
		"tags":           []any{"db"},
	})
	require.False(t, res.IsError, res.Text)
	assert.True(t, strings.HasPrefix(res.Text, "Template created successfully:\n"))
	assert.Equal(t, map[string]any{"name": "pg", "composeContent": "services: {}", "tags": []any{"db"}},
		backend.bodyJSON(t, "POST /templates"))

	res = call(t, tools, "arcane_template_update", map[string]any{"templateId": "t2", "name": "postgres"})
	require.False(t, res.IsError, res.Text)
	assert.True(t, strings.HasPrefix(res.Text, "Template updated successfully:\n"))
	assert.Equal(t, map[string]any{"name": "postgres"}, backend.bodyJSON(t, "PUT /templates/t2"))
}

func TestVersion(t *testing.T) {
	backend := newFakeBackend().on("GET /version", `{"success":true,"data":{"version":"1.2.3"}}`)
	res := call(t, newArcaneTools(t, backend), "arcane_version", nil)
	assert.Equal(t, Result{Text: "Arcane version: 1.2.3"}, res)
}

func TestTransportErrorBecomesResult(t *testing.T) {
	backend := newFakeBackend().fail("GET /version", errors.New("dial tcp: connection refused"))
	res := call(t, newArcaneTools(t, backend), "arcane_version", nil)
	assert.Equal(t, Result{Text: "Error: dial tcp: connection refused", IsError: true}, res)
}
