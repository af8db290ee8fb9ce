package theo

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"theo/ds"
)

type fixture struct {
	Name    string
	Content []byte
}

type EndToEndTestSuite struct {
	Fixtures    []fixture
	SourceDir   string
	ArchivePath string
	R           *require.Assertions
	suite.Suite
}

func (suite *EndToEndTestSuite) SetupTest() {
	suite.R = suite.Require()
	suite.Fixtures = []fixture{
		{"a.txt", []byte("hi")},
		{"b.bin", []byte{0x00, 0xFF}},
		{"empty", []byte{}},
		{"large.dat", bytes.Repeat([]byte("0123456789abcdef"), 64*1024)},
		{".dotfile", []byte("hidden\n")},
		{"spaces in name.md", []byte("# title\n")},
	}
	suite.SourceDir = suite.T().TempDir()
	suite.ArchivePath = filepath.Join(suite.T().TempDir(), "crushed.theo")
	lo.ForEach(
		suite.Fixtures,
		func(f fixture, _ int) {
			err := os.WriteFile(filepath.Join(suite.SourceDir, f.Name), f.Content, 0644)
			suite.R.NoError(err)
		},
	)
}

// crush archives the fixtures in the order they are listed.
func (suite *EndToEndTestSuite) crush() {
	sources := lo.Map(
		suite.Fixtures,
		func(f fixture, _ int) Source {
			return FileSource{Path: filepath.Join(suite.SourceDir, f.Name)}
		},
	)
	suite.R.NoError(Crush(suite.ArchivePath, sources))
}

func (suite *EndToEndTestSuite) requireFile(dir string, f fixture) {
	content, err := os.ReadFile(filepath.Join(dir, f.Name))
	suite.R.NoErrorf(err, f.Name)
	suite.R.Equalf(f.Content, content, f.Name)
}

func (suite *EndToEndTestSuite) TestRoundTrip() {
	suite.crush()
	dir := suite.T().TempDir()
	suite.R.NoError(ExtractAll(suite.ArchivePath, dir))

	dirEntries, err := os.ReadDir(dir)
	suite.R.NoError(err)
	suite.R.Len(dirEntries, len(suite.Fixtures))
	lo.ForEach(
		suite.Fixtures,
		func(f fixture, _ int) {
			suite.requireFile(dir, f)
		},
	)
}

func (suite *EndToEndTestSuite) TestRoundTrip_NoFiles() {
	suite.Fixtures = nil
	suite.crush()

	names, err := ListNames(suite.ArchivePath)
	suite.R.NoError(err)
	suite.R.Empty(names)

	dir := suite.T().TempDir()
	suite.R.NoError(ExtractAll(suite.ArchivePath, dir))
	dirEntries, err := os.ReadDir(dir)
	suite.R.NoError(err)
	suite.R.Empty(dirEntries)
}

func (suite *EndToEndTestSuite) TestListNames_MatchesWriteOrder() {
	// deliberately not in directory order
	suite.Fixtures = lo.Reverse(suite.Fixtures)
	suite.crush()

	names, err := ListNames(suite.ArchivePath)
	suite.R.NoError(err)
	suite.R.Equal(
		lo.Map(
			suite.Fixtures,
			func(f fixture, _ int) string {
				return f.Name
			},
		),
		names,
	)
}

func (suite *EndToEndTestSuite) TestExtractOne_OrdinalStability() {
	suite.crush()
	ordinals := ds.MakeRange[uint32](1, uint32(len(suite.Fixtures))+1, 1)
	lo.ForEach(
		lo.Zip2(ordinals, suite.Fixtures),
		func(tuple lo.Tuple2[uint32, fixture], _ int) {
			ordinal := tuple.A
			f := tuple.B
			dir := suite.T().TempDir()
			found, err := ExtractOne(suite.ArchivePath, dir, ordinal)
			suite.R.NoError(err)
			suite.R.Truef(found, "ordinal %d", ordinal)
			suite.requireFile(dir, f)

			dirEntries, err := os.ReadDir(dir)
			suite.R.NoError(err)
			suite.R.Len(dirEntries, 1)
		},
	)

	for _, ordinal := range []uint32{0, uint32(len(suite.Fixtures)) + 1} {
		found, err := ExtractOne(suite.ArchivePath, suite.T().TempDir(), ordinal)
		suite.R.NoError(err)
		suite.R.Falsef(found, "ordinal %d", ordinal)
	}
}

func (suite *EndToEndTestSuite) TestEnumerateThenCrush() {
	// the archive sits next to the files it is made from
	archivePath := filepath.Join(suite.SourceDir, "self.theo")
	suite.R.NoError(os.WriteFile(archivePath, []byte("stale"), 0644))

	sources, err := Enumerate(suite.SourceDir, archivePath)
	suite.R.NoError(err)
	suite.R.NoError(Crush(archivePath, sources))

	names, err := ListNames(archivePath)
	suite.R.NoError(err)
	suite.R.Len(names, len(suite.Fixtures))
	suite.R.NotContains(names, "self.theo")
}

func TestEndToEndTestSuite(t *testing.T) {
	suite.Run(t, new(EndToEndTestSuite))
}
