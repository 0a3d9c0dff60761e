package main

import (
	"fmt"
	"os"

	"blackjack/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const header = `# blackjack console configuration
# point BLACKJACK_CONFIG_FILE at this file, or save it as ./config.yaml
# every key can be overridden with BLACKJACK_<SECTION>_<KEY>, e.g. BLACKJACK_LOG_LEVEL=debug
`

func main() {
	fmt.Print(header)
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not encode config")
	}
}
