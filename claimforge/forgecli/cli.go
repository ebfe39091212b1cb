package forgecli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/claimforge/claimforge/claimforge/output"
	"github.com/claimforge/claimforge/claimforge/synth"
	"github.com/claimforge/claimforge/claimforge/utils"
	"github.com/claimforge/claimforge/conf"
	"github.com/claimforge/claimforge/log"
)

// App Name and usage. Edit them here to prevent breaking tests
const Name = "claimforge"
const Usage = "Synthetic healthcare claims seed data CLI"
const Version = "1.0.0"

const dateLayout = "2006-01-02"

func GetApp() *cli.App {
	return setUpApp()
}

func setUpApp() *cli.App {
	app := cli.NewApp()
	app.Name = Name
	app.Usage = Usage
	app.Version = Version
	var outputDir, startDate, endDate string
	var numPatients, numProviders, numClaims int
	var seed int64
	app.Commands = []cli.Command{
		{
			Name:  "generate",
			Usage: "Generate patient, provider, and claim seed files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "output-dir",
					Usage:       "Directory the seed files are written to",
					Value:       defaultOutputDir(),
					Destination: &outputDir,
				},
				cli.IntFlag{
					Name:        "num-patients",
					Usage:       "Number of patients to generate",
					Value:       utils.GetEnvInt("CLAIMFORGE_NUM_PATIENTS", 10),
					Destination: &numPatients,
				},
				cli.IntFlag{
					Name:        "num-providers",
					Usage:       "Number of providers to generate",
					Value:       utils.GetEnvInt("CLAIMFORGE_NUM_PROVIDERS", 12),
					Destination: &numProviders,
				},
				cli.IntFlag{
					Name:        "num-claims",
					Usage:       "Number of claims to generate",
					Value:       utils.GetEnvInt("CLAIMFORGE_NUM_CLAIMS", 40),
					Destination: &numClaims,
				},
				cli.Int64Flag{
					Name:        "seed",
					Usage:       "Random source seed; the same seed reproduces output exactly",
					Value:       42,
					Destination: &seed,
				},
				cli.StringFlag{
					Name:        "start-date",
					Usage:       "Earliest claim service date (YYYY-MM-DD)",
					Value:       "2023-01-01",
					Destination: &startDate,
				},
				cli.StringFlag{
					Name:        "end-date",
					Usage:       "Latest claim service date (YYYY-MM-DD)",
					Value:       "2023-12-31",
					Destination: &endDate,
				},
			},
			Action: func(c *cli.Context) error {
				return generate(app.Writer, genParams{
					outputDir:    outputDir,
					numPatients:  numPatients,
					numProviders: numProviders,
					numClaims:    numClaims,
					seed:         seed,
					startDate:    startDate,
					endDate:      endDate,
				})
			},
		},
	}
	return app
}

type genParams struct {
	outputDir    string
	numPatients  int
	numProviders int
	numClaims    int
	seed         int64
	startDate    string
	endDate      string
}

func generate(w io.Writer, params genParams) error {
	if params.numPatients < 0 {
		return errors.New("patient count (--num-patients) must not be negative")
	}
	if params.numProviders < 0 {
		return errors.New("provider count (--num-providers) must not be negative")
	}
	if params.numClaims < 0 {
		return errors.New("claim count (--num-claims) must not be negative")
	}
	if params.numClaims > 0 && (params.numPatients == 0 || params.numProviders == 0) {
		return errors.New("claims cannot be generated without patients and providers")
	}
	start, err := time.Parse(dateLayout, params.startDate)
	if err != nil {
		return errors.Wrap(err, "start date (--start-date) is invalid")
	}
	end, err := time.Parse(dateLayout, params.endDate)
	if err != nil {
		return errors.Wrap(err, "end date (--end-date) is invalid")
	}
	if end.Before(start) {
		return errors.New("end date (--end-date) must not precede start date (--start-date)")
	}

	if err := os.MkdirAll(params.outputDir, 0750); err != nil {
		return errors.Wrapf(err, "could not create output directory %s", params.outputDir)
	}

	fmt.Fprintf(w, "Generating synthetic data...\n")
	log.Gen.Infof("Generating seed data with seed %d into %s", params.seed, params.outputDir)

	g := synth.NewGenerator(params.seed)
	patients := g.Patients(params.numPatients)
	providers := g.Providers(params.numProviders)
	claims, err := g.Claims(synth.PatientIDs(patients), synth.ProviderIDs(providers),
		params.numClaims, start, end)
	if err != nil {
		return err
	}

	if _, err := output.WritePatients(params.outputDir, patients); err != nil {
		return err
	}
	if _, err := output.WriteProviders(params.outputDir, providers); err != nil {
		return err
	}
	if _, err := output.WriteClaims(params.outputDir, claims); err != nil {
		return err
	}

	fmt.Fprintf(w, "Generated:\n")
	fmt.Fprintf(w, "  - %d patient records\n", len(patients))
	fmt.Fprintf(w, "  - %d provider records\n", len(providers))
	fmt.Fprintf(w, "  - %d claim line records\n", len(claims))
	fmt.Fprintf(w, "Saved to: %s\n", params.outputDir)
	return nil
}

func defaultOutputDir() string {
	if dir := conf.GetEnv("CLAIMFORGE_OUTPUT_DIR"); dir != "" {
		return dir
	}
	return "seeds"
}
