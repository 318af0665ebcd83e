package deps

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/aurum-atelier/common/loggers"
	"github.com/sunwei/aurum-atelier/config"
	"github.com/sunwei/aurum-atelier/sitefs"
)

func TestNew(t *testing.T) {
	mfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mfs, "/site/i18n/en.toml", []byte("[nav]\ncraft = \"Workshop\"\n"), 0o644))

	cfg, err := config.LoadConfig(config.SourceDescriptor{Fs: mfs, WorkingDir: "/site"})
	require.NoError(t, err)

	log, buf := loggers.NewBufferLogger()
	d, err := New(DepsCfg{Logger: log, Fs: sitefs.NewFrom(mfs, "/site", "dist"), Cfg: cfg})
	require.NoError(t, err)

	require.Equal(t, "/site/dist", d.Fs.AbsPublishDir())
	require.Equal(t, []string{"en", "zh"}, d.Languages.Languages.Codes())
	require.Equal(t, "Workshop", d.Translator.T("en", "nav.craft"))
	require.Equal(t, "工艺", d.Translator.T("zh", "nav.craft"))
	require.False(t, d.Publisher.MinifyOutput())
	require.Len(t, d.OutputFormatsConfig, 2)
	require.NotNil(t, d.Clock)
	require.Zero(t, log.ErrorCount())
	require.Contains(t, buf.String(), "Load translations")
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(DepsCfg{})
	require.Error(t, err)
}
