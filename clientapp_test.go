package clientapp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapp "github.com/theyemeni/client-app-sdk"
	"github.com/theyemeni/client-app-sdk/pkg/webmsg"
)

func TestNew_QueryParamMode(t *testing.T) {
	t.Parallel()

	app, err := clientapp.New(
		clientapp.WithEnvironmentQueryParam("pcEnvironment"),
		clientapp.WithLocation(clientapp.StaticLocation("pcEnvironment=mypurecloud.com&theme=dark")),
	)
	require.NoError(t, err)
	assert.Equal(t, "mypurecloud.com", app.Environment())
	assert.Equal(t, "https://apps.mypurecloud.com", app.TargetOrigin())
}

func TestNew_QueryParamRepeated(t *testing.T) {
	t.Parallel()

	_, err := clientapp.New(
		clientapp.WithEnvironmentQueryParam("env"),
		clientapp.WithLocation(clientapp.StaticLocation("env=a&env=b")),
	)
	require.Error(t, err)
	assert.True(t, clientapp.IsConfigurationError(err))
}

func TestNew_ExplicitEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		hint       string
		wantEnv    string
		wantOrigin string
		wantErr    bool
	}{
		{"exact id", "mypurecloud.ie", "mypurecloud.ie", "https://apps.mypurecloud.ie", false},
		{"case-insensitive", "MyPureCloud.DE", "mypurecloud.de", "https://apps.mypurecloud.de", false},
		{"full origin", "https://apps.usw2.pure.cloud", "usw2.pure.cloud", "https://apps.usw2.pure.cloud", false},
		{"unknown", "not-a-real-env", "", "", true},
		{"blank", "", "", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app, err := clientapp.New(clientapp.WithEnvironment(tt.hint))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, clientapp.IsConfigurationError(err))
				assert.Nil(t, app)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEnv, app.Environment())
			assert.Equal(t, tt.wantOrigin, app.TargetOrigin())
		})
	}
}

func TestNew_ExplicitOrigin(t *testing.T) {
	t.Parallel()

	app, err := clientapp.New(clientapp.WithOrigin("https://example-host.test"))
	require.NoError(t, err)
	assert.Equal(t, "https://example-host.test", app.TargetOrigin())
	assert.Empty(t, app.Environment(), "custom origins carry no environment id")
}

func TestNew_DefaultEnvironment(t *testing.T) {
	t.Parallel()

	app, err := clientapp.New()
	require.NoError(t, err)
	assert.Equal(t, "mypurecloud.com", app.Environment())
}

func TestNew_EndToEnd(t *testing.T) {
	t.Parallel()

	var posted []webmsg.Envelope
	bridge := clientapp.SenderFunc(func(targetOrigin string, e webmsg.Envelope) error {
		assert.Equal(t, "https://apps.mypurecloud.ie", targetOrigin)
		posted = append(posted, e)
		return nil
	})

	app, err := clientapp.New(
		clientapp.WithEnvironment("mypurecloud.ie"),
		clientapp.WithSender(bridge),
		clientapp.WithLogger("client-app"),
	)
	require.NoError(t, err)

	require.NoError(t, app.Lifecycle().Bootstrapped())
	require.NoError(t, app.Alerting().ShowToast("Hello", "World",
		clientapp.WithToastType(clientapp.ToastInfo),
	))

	require.Len(t, posted, 2)
	assert.Equal(t, webmsg.Protocol, posted[0].Protocol)
	assert.Equal(t, "bootstrapped", posted[0].Action)
	assert.Equal(t, "showToast", posted[1].Action)
}

func TestAbout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "client-app-sdk v"+clientapp.Version, clientapp.About())
	assert.Equal(t, "client-app-sdk", clientapp.Name)
}
