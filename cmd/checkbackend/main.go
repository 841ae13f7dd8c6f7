// checkbackend 检查运行中的后端服务：接口连通性与数据库状态
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"defense-management-system/internal/global/httpclient"
)

func main() {
	base := flag.String("url", "http://localhost:5000/api", "后端接口地址")
	timeout := flag.Duration("timeout", 5*time.Second, "单次请求超时")
	flag.Parse()

	client := httpclient.New(*base, *timeout)
	failed := false
	for _, p := range probes {
		r := run(client, p)
		fmt.Println(r)
		if !r.OK {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
