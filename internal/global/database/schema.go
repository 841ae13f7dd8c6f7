package database

import (
	"context"

	"gorm.io/gorm"

	"defense-management-system/internal/global/logger"
)

type table struct {
	name string
	ddl  string
}

// tables 按外键依赖顺序排列，父表在前
var tables = []table{
	{"users", `CREATE TABLE IF NOT EXISTS users (
  user_id INT PRIMARY KEY AUTO_INCREMENT,
  username VARCHAR(50) NOT NULL UNIQUE,
  password VARCHAR(255) NOT NULL,
  nickname VARCHAR(100) NOT NULL,
  phone VARCHAR(20),
  email VARCHAR(100) UNIQUE,
  user_group VARCHAR(20) NOT NULL,
  avatar VARCHAR(255),
  state TINYINT DEFAULT 1,
  create_time DATETIME DEFAULT CURRENT_TIMESTAMP,
  update_time DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"students", `CREATE TABLE IF NOT EXISTS students (
  student_id INT PRIMARY KEY AUTO_INCREMENT,
  user_id INT NOT NULL,
  student_name VARCHAR(50) NOT NULL,
  student_no VARCHAR(20) NOT NULL UNIQUE,
  student_gender VARCHAR(10),
  student_age VARCHAR(10),
  class_name VARCHAR(50),
  major_name VARCHAR(50),
  grade VARCHAR(20),
  state TINYINT DEFAULT 1,
  create_time DATETIME DEFAULT CURRENT_TIMESTAMP,
  update_time DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  FOREIGN KEY (user_id) REFERENCES users(user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"teachers", `CREATE TABLE IF NOT EXISTS teachers (
  teacher_id INT PRIMARY KEY AUTO_INCREMENT,
  user_id INT NOT NULL,
  teacher_name VARCHAR(50) NOT NULL,
  teacher_no VARCHAR(20) NOT NULL UNIQUE,
  teacher_gender VARCHAR(10),
  teacher_age VARCHAR(10),
  department_name VARCHAR(50),
  professional_title VARCHAR(50),
  state TINYINT DEFAULT 1,
  create_time DATETIME DEFAULT CURRENT_TIMESTAMP,
  update_time DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  FOREIGN KEY (user_id) REFERENCES users(user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"defense_plans", `CREATE TABLE IF NOT EXISTS defense_plans (
  plan_id INT PRIMARY KEY AUTO_INCREMENT,
  plan_name VARCHAR(100) NOT NULL,
  plan_desc TEXT,
  defense_type VARCHAR(50) NOT NULL,
  start_time DATETIME NOT NULL,
  end_time DATETIME NOT NULL,
  status TINYINT DEFAULT 0,
  create_time DATETIME DEFAULT CURRENT_TIMESTAMP,
  update_time DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"defense_groups", `CREATE TABLE IF NOT EXISTS defense_groups (
  group_id INT PRIMARY KEY AUTO_INCREMENT,
  plan_id INT NOT NULL,
  group_name VARCHAR(100) NOT NULL,
  group_leader INT NOT NULL,
  venue_id INT,
  defense_time DATETIME NOT NULL,
  status TINYINT DEFAULT 0,
  create_time DATETIME DEFAULT CURRENT_TIMESTAMP,
  update_time DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  FOREIGN KEY (plan_id) REFERENCES defense_plans(plan_id),
  FOREIGN KEY (group_leader) REFERENCES teachers(teacher_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"defense_group_members", `CREATE TABLE IF NOT EXISTS defense_group_members (
  gt_id INT PRIMARY KEY AUTO_INCREMENT,
  group_id INT NOT NULL,
  teacher_id INT NOT NULL,
  role VARCHAR(20) NOT NULL,
  create_time DATETIME DEFAULT CURRENT_TIMESTAMP,
  update_time DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  FOREIGN KEY (group_id) REFERENCES defense_groups(group_id),
  FOREIGN KEY (teacher_id) REFERENCES teachers(teacher_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"group_students", `CREATE TABLE IF NOT EXISTS group_students (
  gs_id INT PRIMARY KEY AUTO_INCREMENT,
  group_id INT NOT NULL,
  student_id INT NOT NULL,
  thesis_title VARCHAR(255) NOT NULL,
  order_num INT NOT NULL,
  status TINYINT DEFAULT 0,
  create_time DATETIME DEFAULT CURRENT_TIMESTAMP,
  update_time DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  FOREIGN KEY (group_id) REFERENCES defense_groups(group_id),
  FOREIGN KEY (student_id) REFERENCES students(student_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"papers", `CREATE TABLE IF NOT EXISTS papers (
  paper_id INT PRIMARY KEY AUTO_INCREMENT,
  student_id INT NOT NULL,
  thesis_title VARCHAR(255) NOT NULL,
  thesis_abstract TEXT,
  keywords VARCHAR(255),
  advisor_id INT NOT NULL,
  file_path VARCHAR(255),
  file_size DECIMAL(10,2),
  status TINYINT DEFAULT 0,
  create_time DATETIME DEFAULT CURRENT_TIMESTAMP,
  update_time DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  FOREIGN KEY (student_id) REFERENCES students(student_id),
  FOREIGN KEY (advisor_id) REFERENCES teachers(teacher_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"notices", `CREATE TABLE IF NOT EXISTS notices (
  notice_id INT PRIMARY KEY AUTO_INCREMENT,
  notice_title VARCHAR(255) NOT NULL,
  content TEXT NOT NULL,
  notice_publisher VARCHAR(50) NOT NULL,
  release_time DATETIME DEFAULT CURRENT_TIMESTAMP,
  examine_state TINYINT DEFAULT 0,
  recommend TINYINT DEFAULT 0,
  read_count INT DEFAULT 0,
  create_time DATETIME DEFAULT CURRENT_TIMESTAMP,
  update_time DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
}

// TableNames 建表顺序
func TableNames() []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.name
	}
	return names
}

// Migrate 依次建表，已存在的表保持不变
func Migrate(ctx context.Context, db *gorm.DB) error {
	log := logger.New("Database")
	for _, t := range tables {
		if err := db.WithContext(ctx).Exec(t.ddl).Error; err != nil {
			return err
		}
		log.Debug("数据表已就绪", "table", t.name)
	}
	return nil
}
