// Package config loads tabs.json, the configuration file for tabsd.
//
// # Configuration File Structure
//
//	{
//	  "page": "index.html",
//	  "markers": {
//	    "root": "data-js-tabs",
//	    "button": "data-js-tabs-button",
//	    "panel": "data-js-tabs-content",
//	    "activeClass": "is-active"
//	  },
//	  "server": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "readTimeout": "30s"
//	  },
//	  "s3": {
//	    "region": "us-east-1"
//	  },
//	  "tracing": {
//	    "enabled": false,
//	    "exporter": "stdout",
//	    "serviceName": "tabsd"
//	  },
//	  "metrics": {
//	    "namespace": "tabs"
//	  }
//	}
//
// Every field is optional. Missing fields take the defaults shown above.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
